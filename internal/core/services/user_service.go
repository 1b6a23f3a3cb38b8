package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
	"github.com/recovra/debt_collection_app/internal/utils"
)

// UserService handles user management for local and OAuth users.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(ur portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{
		userRepo: ur,
	}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a local user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, req.Username)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// CreateOAuthUser finds or creates a user for a validated OAuth identity.
// The username is derived from the email local part, suffixed on collision.
func (s *UserService) CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string, emailVerified bool) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}
	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		username = username + "-" + uuid.NewString()[:8]
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Name:           name,
		Email:          email,
		AuthProvider:   domain.AuthProvider(provider),
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save oauth user", slog.String("error", err.Error()), slog.String("provider", provider))
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	logger.Info("OAuth user created", slog.String("user_id", user.UserID), slog.String("provider", provider))
	return &user, nil
}

// SetRefreshToken stores the hash of a freshly issued refresh token,
// rotating out whatever was there before.
func (s *UserService) SetRefreshToken(ctx context.Context, userID, tokenHash string, expiry time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiry, time.Now())
}

// ClearRefreshToken revokes the stored refresh token, if any.
func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil, time.Now())
}
