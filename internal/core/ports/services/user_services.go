package services

import (
	"context"
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/dto"
)

// UserSvcFacade covers user management for both local and OAuth users.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateOAuthUser finds or creates a user for a validated OAuth identity.
	CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error)

	// SetRefreshToken stores the hash of a freshly issued refresh token.
	SetRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error

	// ClearRefreshToken revokes the stored refresh token, if any.
	ClearRefreshToken(ctx context.Context, userID string) error
}
