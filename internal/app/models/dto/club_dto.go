package dto

// ClubResponse is a club as served to clients
type ClubResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}
