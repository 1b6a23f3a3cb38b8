package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	"github.com/recovra/debt_collection_app/internal/models"
	"github.com/recovra/debt_collection_app/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT
	u.user_id, u.username, u.name, u.email, u.password_hash,
	u.auth_provider, u.provider_user_id, u.email_verified,
	u.refresh_token_hash, u.refresh_token_expiry_time,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by, u.deleted_at
FROM users u
`

func (r *PgxUserRepository) getUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	query := FULL_USER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	modelUser, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect user row", err)
	}
	user := mapping.ToDomainUser(modelUser)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.user_id = $1 AND u.deleted_at IS NULL`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.username = $1 AND u.deleted_at IS NULL`, username)
}

func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider string, providerUserID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE u.auth_provider = $1 AND u.provider_user_id = $2 AND u.deleted_at IS NULL`,
		provider, providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, username, name, email, password_hash,
			auth_provider, provider_user_id, email_verified,
			refresh_token_hash, refresh_token_expiry_time,
			created_at, created_by, last_updated_at, last_updated_by, deleted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.EmailVerified,
		m.RefreshTokenHash,
		m.RefreshTokenExpiryTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("username " + user.Username + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of a user's refresh token.
// An empty hash clears the stored token, logging the user out everywhere.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time, now time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, tokenHash, expiry, now, userID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token for user "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found")
	}
	return nil
}
