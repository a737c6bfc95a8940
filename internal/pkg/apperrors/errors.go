// Package apperrors defines the sentinel errors the services report and
// the controllers map onto client-facing messages.
package apperrors

import "errors"

// Authentication and validation errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidationFailed   = errors.New("validation failed")
)

// Account errors
var (
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrEnrollmentAlreadyExists = errors.New("enrollment number already registered")
)

// Registration errors
var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
)
