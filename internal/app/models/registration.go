package models

import "time"

// Registration links a user to an event they signed up for
type Registration struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	EventID          int64     `json:"event_id" db:"event_id"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}
