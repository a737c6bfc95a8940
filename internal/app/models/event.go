package models

import "time"

// Event represents a campus event hosted by a club
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Time        string    `json:"time" db:"time"`
	Venue       string    `json:"venue" db:"venue"`
	URL         string    `json:"url" db:"url"`
	ClubID      *int64    `json:"club_id,omitempty" db:"club_id"`
}

// EventWithClub is an event row joined with its hosting club, and, for
// per-user listings, the registration timestamp.
type EventWithClub struct {
	Event

	ClubName         string     `db:"club_name"`
	ClubLogo         string     `db:"club_logo"`
	RegistrationDate *time.Time `db:"registration_date"`
}
