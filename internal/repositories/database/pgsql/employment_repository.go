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

type PgxEmploymentRepository struct {
	BaseRepository
}

// newPgxEmploymentRepository creates a new repository for employment data.
func newPgxEmploymentRepository(pool *pgxpool.Pool) portsrepo.EmploymentRepositoryFacade {
	return &PgxEmploymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmploymentRepositoryFacade = (*PgxEmploymentRepository)(nil)

func (r *PgxEmploymentRepository) ListEmploymentByDebtor(ctx context.Context, debtorID string) ([]domain.EmploymentRecord, error) {
	query := `
		SELECT
			e.employment_id, e.debtor_id, e.employer_name, e.employer_phone,
			e.employer_address, e.position, e.salary, e.is_current,
			e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
		FROM employment_records e
		WHERE e.debtor_id = $1
		ORDER BY e.is_current DESC, e.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, debtorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employment for debtor "+debtorID, err)
	}
	defer rows.Close()
	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.EmploymentRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.EmploymentRecord{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect employment rows", err)
	}
	return mapping.ToDomainEmploymentSlice(modelRecords), nil
}

func (r *PgxEmploymentRepository) SaveEmployment(ctx context.Context, record domain.EmploymentRecord) error {
	m := mapping.ToModelEmployment(record)
	query := `
		INSERT INTO employment_records (
			employment_id, debtor_id, employer_name, employer_phone,
			employer_address, position, salary, is_current,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmploymentID,
		m.DebtorID,
		m.EmployerName,
		m.EmployerPhone,
		m.EmployerAddress,
		m.Position,
		m.Salary,
		m.IsCurrent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("debtor " + record.DebtorID + " does not exist")
		}
		return apperrors.NewAppError(500, "failed to save employment for debtor "+record.DebtorID, err)
	}
	return nil
}
