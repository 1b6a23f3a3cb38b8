package models

import "time"

// Client represents a tenant row.
type Client struct {
	ClientID    string `db:"client_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// UserClientRole mirrors domain.UserClientRole at the storage layer.
type UserClientRole string

// UserClient represents a user's membership row in a client.
type UserClient struct {
	UserID   string         `db:"user_id"`
	ClientID string         `db:"client_id"`
	Role     UserClientRole `db:"role"`
	JoinedAt time.Time      `db:"joined_at"`
}
