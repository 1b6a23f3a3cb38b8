package dto

import (
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client (tenant).
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddUserToClientRequest adds a member to a client.
type AddUserToClientRequest struct {
	UserID string `json:"userID" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN COLLECTOR VIEWER"`
}

// ClientResponse mirrors domain.Client.
type ClientResponse struct {
	ClientID    string    `json:"clientID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListClientResponse converts a slice of domain clients to DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
