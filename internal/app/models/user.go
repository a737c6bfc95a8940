package models

import "time"

// User represents a registered account
type User struct {
	ID               int64     `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	Name             string    `json:"name" db:"name"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	EnrollmentNumber string    `json:"enrollment_number" db:"enrollment_number"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}
