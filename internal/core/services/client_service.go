package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// ClientService handles business logic related to clients (tenants) and
// user memberships.
type ClientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(cr portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &ClientService{
		clientRepo: cr,
	}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

// CreateClient creates a new client and makes the creator the initial admin.
func (s *ClientService) CreateClient(ctx context.Context, name, description, creatorUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client in repository", slog.String("error", err.Error()), slog.String("client_name", name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	membership := domain.UserClient{
		UserID:   creatorUserID,
		ClientID: client.ClientID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.clientRepo.AddUserToClient(ctx, membership); err != nil {
		logger.Error("Failed to add creator as admin to new client", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to add creator to client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID), slog.String("creator_user_id", creatorUserID))
	return &client, nil
}

func (s *ClientService) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *ClientService) ListUserClients(ctx context.Context, userID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients for user %s: %w", userID, err)
	}
	return clients, nil
}

// AuthorizeUserAction checks that the user holds requiredRole (or ADMIN) in
// the client. REMOVED members are treated as non-members.
func (s *ClientService) AuthorizeUserAction(ctx context.Context, userID, clientID string, requiredRole domain.UserClientRole) error {
	membership, err := s.clientRepo.FindUserClientRole(ctx, userID, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to check membership for user %s in client %s: %w", userID, clientID, err)
	}
	if membership.Role == domain.RoleRemoved {
		return apperrors.ErrNotFound
	}
	if membership.Role == domain.RoleAdmin {
		return nil
	}
	if membership.Role == requiredRole {
		return nil
	}
	// A collector can do anything a viewer can.
	if requiredRole == domain.RoleViewer && membership.Role == domain.RoleCollector {
		return nil
	}
	return apperrors.ErrForbidden
}

// AddUserToClient adds or updates a member. Only admins may manage membership.
func (s *ClientService) AddUserToClient(ctx context.Context, addingUserID, targetUserID, clientID string, role domain.UserClientRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.AuthorizeUserAction(ctx, addingUserID, clientID, domain.RoleAdmin); err != nil {
		return err
	}

	membership := domain.UserClient{
		UserID:   targetUserID,
		ClientID: clientID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.clientRepo.AddUserToClient(ctx, membership); err != nil {
		logger.Error("Failed to add user to client", slog.String("error", err.Error()), slog.String("target_user_id", targetUserID), slog.String("client_id", clientID))
		return fmt.Errorf("failed to add user %s to client %s: %w", targetUserID, clientID, err)
	}
	logger.Info("User added to client", slog.String("target_user_id", targetUserID), slog.String("client_id", clientID), slog.String("role", string(role)))
	return nil
}
