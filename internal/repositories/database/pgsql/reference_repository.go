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

type PgxReferenceRepository struct {
	BaseRepository
}

// newPgxReferenceRepository creates a new repository for reference data.
func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

func (r *PgxReferenceRepository) ListReferencesByDebtor(ctx context.Context, debtorID string) ([]domain.Reference, error) {
	query := `
		SELECT
			ref.reference_id, ref.debtor_id, ref.name, ref.relationship, ref.phone,
			ref.address, ref.city, ref.state, ref.zip, ref.notes,
			ref.created_at, ref.created_by, ref.last_updated_at, ref.last_updated_by
		FROM debtor_references ref
		WHERE ref.debtor_id = $1
		ORDER BY ref.created_at, ref.reference_id;
	`
	rows, err := r.Pool.Query(ctx, query, debtorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query references for debtor "+debtorID, err)
	}
	defer rows.Close()
	modelRefs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Reference])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Reference{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect reference rows", err)
	}
	return mapping.ToDomainReferenceSlice(modelRefs), nil
}

func (r *PgxReferenceRepository) SaveReference(ctx context.Context, reference domain.Reference) error {
	m := mapping.ToModelReference(reference)
	query := `
		INSERT INTO debtor_references (
			reference_id, debtor_id, name, relationship, phone,
			address, city, state, zip, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReferenceID,
		m.DebtorID,
		m.Name,
		m.Relationship,
		m.Phone,
		m.Address,
		m.City,
		m.State,
		m.Zip,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("debtor " + reference.DebtorID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to save reference for debtor "+reference.DebtorID, err)
	}
	return nil
}
