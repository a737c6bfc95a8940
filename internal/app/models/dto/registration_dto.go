package dto

// RegisterRequest represents an event registration payload
type RegisterRequest struct {
	UserID  int64 `json:"user_id" example:"1"`
	EventID int64 `json:"event_id" example:"3"`
}

// RegisterResponse represents the registration result
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
