package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	"github.com/recovra/debt_collection_app/internal/models"
	"github.com/recovra/debt_collection_app/internal/utils/mapping"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client (tenant) data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

var FULL_CLIENT_SELECT_QUERY = `
SELECT
	c.client_id, c.name, c.description, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM clients c
`

func (r *PgxClientRepository) getClients(ctx context.Context, filterQuery string, args ...any) ([]domain.Client, error) {
	query := FULL_CLIENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()
	modelClients, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Client{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect client rows", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	clients, err := r.getClients(ctx, `WHERE c.client_id = $1`, clientID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &clients[0], nil
}

func (r *PgxClientRepository) ListClientsByUserID(ctx context.Context, userID string) ([]domain.Client, error) {
	filter := `
	JOIN user_clients uc ON c.client_id = uc.client_id
	WHERE uc.user_id = $1 AND uc.role != $2 AND c.is_active = true
	ORDER BY c.name;`
	return r.getClients(ctx, filter, userID, domain.RoleRemoved)
}

func (r *PgxClientRepository) FindUserClientRole(ctx context.Context, userID, clientID string) (*domain.UserClient, error) {
	query := `
		SELECT uc.user_id, u.name AS user_name, uc.client_id, uc.role, uc.joined_at
		FROM user_clients uc
		JOIN users u ON uc.user_id = u.user_id
		WHERE uc.user_id = $1 AND uc.client_id = $2;
	`
	var uc domain.UserClient
	err := r.Pool.QueryRow(ctx, query, userID, clientID).Scan(
		&uc.UserID,
		&uc.UserName,
		&uc.ClientID,
		&uc.Role,
		&uc.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user is not a member of client " + clientID)
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" role in client "+clientID, err)
	}
	return &uc, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (
			client_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("client ID " + client.ClientID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save client "+client.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) AddUserToClient(ctx context.Context, membership domain.UserClient) error {
	query := `
		INSERT INTO user_clients (user_id, client_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, client_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: add the user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.ClientID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in client "+membership.ClientID, err)
	}
	return nil
}
