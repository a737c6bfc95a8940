package models

// Club represents a campus club or society
type Club struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	LogoURL     string `json:"logo_url" db:"logo_url"`
	Description string `json:"description" db:"description"`
}
