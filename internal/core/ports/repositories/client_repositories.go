package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// ClientReader defines read operations for client (tenant) data.
type ClientReader interface {
	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClientsByUserID retrieves the clients a user is a member of.
	ListClientsByUserID(ctx context.Context, userID string) ([]domain.Client, error)

	// FindUserClientRole retrieves a user's membership in a client.
	FindUserClientRole(ctx context.Context, userID, clientID string) (*domain.UserClient, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// AddUserToClient persists a user's membership in a client.
	AddUserToClient(ctx context.Context, membership domain.UserClient) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
