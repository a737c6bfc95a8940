package dto

// LoginRequest represents the login payload. The identifier field is named
// username for historical reasons but carries the account email.
type LoginRequest struct {
	Username string `json:"username" example:"jane@campus.edu"`
	Password string `json:"password" example:"pw123"`
}

// SignupRequest represents the account creation payload. Username is a
// legacy alias for Email kept for older clients; Email wins when both are
// present.
type SignupRequest struct {
	Email            string `json:"email" example:"jane@campus.edu"`
	Username         string `json:"username,omitempty"`
	Password         string `json:"password" example:"pw123"`
	EnrollmentNumber string `json:"enrollment_number" example:"EN2301"`
	Name             string `json:"name,omitempty" example:"Jane"`
}

// UserResponse is the sanitized user projection returned to clients.
// It never carries the password hash.
type UserResponse struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollment_number"`
}

// LoginResponse represents the login result
type LoginResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user,omitempty"`
	Message string        `json:"message,omitempty"`
}

// SignupResponse represents the signup result
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
