package domain

import "time"

// Client represents a collection agency tenant. Every portfolio, debtor and
// import mapping belongs to exactly one client, and all cross-portfolio
// identity linkage stays inside a single client's data.
type Client struct {
	ClientID    string `json:"clientID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserClientRole defines the possible roles a user can have within a client.
type UserClientRole string

const (
	RoleAdmin     UserClientRole = "ADMIN"
	RoleCollector UserClientRole = "COLLECTOR"
	RoleViewer    UserClientRole = "VIEWER"
	RoleRemoved   UserClientRole = "REMOVED"
)

// UserClient represents the membership of a User in a Client.
type UserClient struct {
	UserID   string         `json:"userID"`
	UserName string         `json:"userName"`
	ClientID string         `json:"clientID"`
	Role     UserClientRole `json:"role"`
	JoinedAt time.Time      `json:"joinedAt"`
}
