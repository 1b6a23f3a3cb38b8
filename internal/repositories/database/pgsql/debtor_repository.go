package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

type PgxDebtorRepository struct {
	BaseRepository
}

// newPgxDebtorRepository creates a new repository for debtor data.
func newPgxDebtorRepository(pool *pgxpool.Pool) portsrepo.DebtorRepositoryFacade {
	return &PgxDebtorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DebtorRepositoryFacade = (*PgxDebtorRepository)(nil)

var FULL_DEBTOR_SELECT_QUERY = `
SELECT
	d.debtor_id, d.client_id, d.portfolio_id, d.assigned_collector_id, d.linked_debtor_id,
	d.file_number, d.account_number, d.first_name, d.last_name, d.ssn, d.ssn_last4,
	d.date_of_birth, d.address, d.city, d.state, d.zip, d.original_creditor,
	d.original_balance, d.current_balance, d.status, d.charge_off_date, d.last_payment_date,
	d.last_contact_date, d.next_contact_date, d.notes, d.custom_fields,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM debtors d
`

func (r *PgxDebtorRepository) getDebtors(ctx context.Context, filterQuery string, args ...any) ([]domain.Debtor, error) {
	query := FULL_DEBTOR_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debtors", err)
	}
	defer rows.Close()
	modelDebtors, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Debtor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Debtor{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect debtor rows", err)
	}
	return mapping.ToDomainDebtorSlice(modelDebtors), nil
}

func (r *PgxDebtorRepository) FindDebtorByID(ctx context.Context, debtorID string) (*domain.Debtor, error) {
	debtors, err := r.getDebtors(ctx, `WHERE d.debtor_id = $1`, debtorID)
	if err != nil {
		return nil, err
	}
	if len(debtors) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &debtors[0], nil
}

// ListDebtorsByPortfolio returns every debtor in a portfolio in creation
// order. The importer snapshots this once per batch, so rows created during
// the batch are deliberately not visible to later rows of the same batch.
func (r *PgxDebtorRepository) ListDebtorsByPortfolio(ctx context.Context, portfolioID string) ([]domain.Debtor, error) {
	return r.getDebtors(ctx, `WHERE d.portfolio_id = $1 ORDER BY d.created_at, d.debtor_id;`, portfolioID)
}

func (r *PgxDebtorRepository) ListDebtorsByPortfolioPaged(ctx context.Context, portfolioID string, limit int, offset int) ([]domain.Debtor, error) {
	return r.getDebtors(ctx,
		`WHERE d.portfolio_id = $1 ORDER BY d.created_at, d.debtor_id LIMIT $2 OFFSET $3;`,
		portfolioID, limit, offset)
}

func (r *PgxDebtorRepository) ListDebtorsByClient(ctx context.Context, clientID string) ([]domain.Debtor, error) {
	return r.getDebtors(ctx, `WHERE d.client_id = $1 ORDER BY d.created_at, d.debtor_id;`, clientID)
}

func (r *PgxDebtorRepository) SaveDebtor(ctx context.Context, debtor domain.Debtor) error {
	m := mapping.ToModelDebtor(debtor)
	query := `
		INSERT INTO debtors (
			debtor_id, client_id, portfolio_id, assigned_collector_id, linked_debtor_id,
			file_number, account_number, first_name, last_name, ssn, ssn_last4,
			date_of_birth, address, city, state, zip, original_creditor,
			original_balance, current_balance, status, charge_off_date, last_payment_date,
			last_contact_date, next_contact_date, notes, custom_fields,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtorID,
		m.ClientID,
		m.PortfolioID,
		m.AssignedCollectorID,
		m.LinkedDebtorID,
		m.FileNumber,
		m.AccountNumber,
		m.FirstName,
		m.LastName,
		m.SSN,
		m.SSNLast4,
		m.DateOfBirth,
		m.Address,
		m.City,
		m.State,
		m.Zip,
		m.OriginalCreditor,
		m.OriginalBalance,
		m.CurrentBalance,
		m.Status,
		m.ChargeOffDate,
		m.LastPaymentDate,
		m.LastContactDate,
		m.NextContactDate,
		m.Notes,
		m.CustomFields,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("debtor ID " + debtor.DebtorID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("portfolio " + debtor.PortfolioID + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save debtor "+debtor.DebtorID, err)
	}
	return nil
}

// UpdateDebtorFields applies a partial patch: only non-nil patch fields make
// it into the SET clause, and custom_fields is merged with the jsonb ||
// operator rather than replaced.
func (r *PgxDebtorRepository) UpdateDebtorFields(ctx context.Context, debtorID string, patch domain.DebtorPatch, userID string) error {
	if patch.IsEmpty() {
		return nil
	}

	var setClauses []string
	var args []any
	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.AssignedCollectorID != nil {
		addSet("assigned_collector_id", *patch.AssignedCollectorID)
	}
	if patch.AccountNumber != nil {
		addSet("account_number", *patch.AccountNumber)
	}
	if patch.FirstName != nil {
		addSet("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		addSet("last_name", *patch.LastName)
	}
	if patch.SSN != nil {
		addSet("ssn", *patch.SSN)
	}
	if patch.SSNLast4 != nil {
		addSet("ssn_last4", *patch.SSNLast4)
	}
	if patch.DateOfBirth != nil {
		addSet("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Address != nil {
		addSet("address", *patch.Address)
	}
	if patch.City != nil {
		addSet("city", *patch.City)
	}
	if patch.State != nil {
		addSet("state", *patch.State)
	}
	if patch.Zip != nil {
		addSet("zip", *patch.Zip)
	}
	if patch.OriginalCreditor != nil {
		addSet("original_creditor", *patch.OriginalCreditor)
	}
	if patch.OriginalBalance != nil {
		addSet("original_balance", *patch.OriginalBalance)
	}
	if patch.CurrentBalance != nil {
		addSet("current_balance", *patch.CurrentBalance)
	}
	if patch.Status != nil {
		addSet("status", string(*patch.Status))
	}
	if patch.ChargeOffDate != nil {
		addSet("charge_off_date", *patch.ChargeOffDate)
	}
	if patch.LastPaymentDate != nil {
		addSet("last_payment_date", *patch.LastPaymentDate)
	}
	if patch.LastContactDate != nil {
		addSet("last_contact_date", *patch.LastContactDate)
	}
	if patch.NextContactDate != nil {
		addSet("next_contact_date", *patch.NextContactDate)
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}
	if len(patch.CustomFields) > 0 {
		args = append(args, patch.CustomFields)
		setClauses = append(setClauses, fmt.Sprintf("custom_fields = custom_fields || $%d", len(args)))
	}

	addSet("last_updated_at", time.Now())
	addSet("last_updated_by", userID)

	args = append(args, debtorID)
	query := fmt.Sprintf("UPDATE debtors SET %s WHERE debtor_id = $%d;",
		strings.Join(setClauses, ", "), len(args))

	result, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update debtor "+debtorID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("debtor " + debtorID + " not found")
	}
	return nil
}
