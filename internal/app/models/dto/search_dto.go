package dto

// SearchResponse carries matching events and clubs for a query. Both slices
// are always present, possibly empty, never null.
type SearchResponse struct {
	Events []EventResponse `json:"events"`
	Clubs  []ClubResponse  `json:"clubs"`
}

// NewSearchResponse returns an empty result set
func NewSearchResponse() *SearchResponse {
	return &SearchResponse{
		Events: make([]EventResponse, 0),
		Clubs:  make([]ClubResponse, 0),
	}
}
