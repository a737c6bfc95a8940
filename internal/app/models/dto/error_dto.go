package dto

// ListErrorResponse is the failure body of the listing endpoints
type ListErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SearchErrorResponse is the failure body of the search endpoint. It keeps
// the empty result slices so clients that ignore the flag still render.
type SearchErrorResponse struct {
	Error   string          `json:"error"`
	Details string          `json:"details,omitempty"`
	Success bool            `json:"success"`
	Events  []EventResponse `json:"events"`
	Clubs   []ClubResponse  `json:"clubs"`
}

// NewSearchErrorResponse builds a search failure body with empty result sets
func NewSearchErrorResponse(details string) *SearchErrorResponse {
	return &SearchErrorResponse{
		Error:   "Error performing search",
		Details: details,
		Success: false,
		Events:  make([]EventResponse, 0),
		Clubs:   make([]ClubResponse, 0),
	}
}
