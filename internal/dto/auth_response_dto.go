package dto

import "time"

// LoginRequest carries local login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the application's access token. The refresh token
// travels separately as an HTTP-only cookie.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required"`
}
