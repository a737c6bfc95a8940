package dto

// EventResponse is an event as served to clients: the event columns plus the
// hosting club's name and logo. RegistrationDate is set only on per-user
// listings.
type EventResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date" example:"2025-11-02"`
	Time             string `json:"time" example:"18:00"`
	Venue            string `json:"venue"`
	URL              string `json:"url"`
	ClubID           *int64 `json:"club_id,omitempty"`
	Club             string `json:"club"`
	ClubLogo         string `json:"clubLogo,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
}
