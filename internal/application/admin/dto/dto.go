package dto

import "time"

// CreateAdminRequest is the payload for creating an admin account
type CreateAdminRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=32"`
	Password   string `json:"password" binding:"required,min=8"`
	IsSudo     bool   `json:"is_sudo"`
	TelegramID *int64 `json:"telegram_id"`
}

// LoginRequest is the payload for the token endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminResponse is the public view of an admin account
type AdminResponse struct {
	Username   string    `json:"username"`
	IsSudo     bool      `json:"is_sudo"`
	TelegramID *int64    `json:"telegram_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TokenResponse is returned after a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
