package services

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// ClientReaderSvc exposes read access to client data.
type ClientReaderSvc interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListUserClients(ctx context.Context, userID string) ([]domain.Client, error)
}

// ClientAuthorizerSvc checks membership roles; every client-scoped service
// call goes through it.
type ClientAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when the user holds requiredRole (or
	// ADMIN) in the client, apperrors.ErrNotFound when not a member and
	// apperrors.ErrForbidden when the role is insufficient.
	AuthorizeUserAction(ctx context.Context, userID, clientID string, requiredRole domain.UserClientRole) error
}

// ClientSvcFacade combines client management operations.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientAuthorizerSvc

	CreateClient(ctx context.Context, name, description, creatorUserID string) (*domain.Client, error)
	AddUserToClient(ctx context.Context, addingUserID, targetUserID, clientID string, role domain.UserClientRole) error
}
