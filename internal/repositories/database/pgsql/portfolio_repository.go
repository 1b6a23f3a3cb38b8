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

type PgxPortfolioRepository struct {
	BaseRepository
}

// newPgxPortfolioRepository creates a new repository for portfolio data.
func newPgxPortfolioRepository(pool *pgxpool.Pool) portsrepo.PortfolioRepositoryFacade {
	return &PgxPortfolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PortfolioRepositoryFacade = (*PgxPortfolioRepository)(nil)

var FULL_PORTFOLIO_SELECT_QUERY = `
SELECT
	p.portfolio_id, p.client_id, p.name, p.original_creditor, p.purchase_date,
	p.purchase_cost, p.total_accounts, p.total_face_value, p.is_active,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM portfolios p
`

func (r *PgxPortfolioRepository) getPortfolios(ctx context.Context, filterQuery string, args ...any) ([]domain.Portfolio, error) {
	query := FULL_PORTFOLIO_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query portfolios", err)
	}
	defer rows.Close()
	modelPortfolios, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Portfolio])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Portfolio{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect portfolio rows", err)
	}
	return mapping.ToDomainPortfolioSlice(modelPortfolios), nil
}

func (r *PgxPortfolioRepository) FindPortfolioByID(ctx context.Context, portfolioID string) (*domain.Portfolio, error) {
	portfolios, err := r.getPortfolios(ctx, `WHERE p.portfolio_id = $1`, portfolioID)
	if err != nil {
		return nil, err
	}
	if len(portfolios) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &portfolios[0], nil
}

func (r *PgxPortfolioRepository) ListPortfoliosByClient(ctx context.Context, clientID string) ([]domain.Portfolio, error) {
	return r.getPortfolios(ctx, `WHERE p.client_id = $1 ORDER BY p.name;`, clientID)
}

func (r *PgxPortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	m := mapping.ToModelPortfolio(portfolio)
	query := `
		INSERT INTO portfolios (
			portfolio_id, client_id, name, original_creditor, purchase_date,
			purchase_cost, total_accounts, total_face_value, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PortfolioID,
		m.ClientID,
		m.Name,
		m.OriginalCreditor,
		m.PurchaseDate,
		m.PurchaseCost,
		m.TotalAccounts,
		m.TotalFaceValue,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("portfolio ID " + portfolio.PortfolioID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("client " + portfolio.ClientID + " does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save portfolio "+portfolio.PortfolioID, err)
	}
	return nil
}

// UpdatePortfolioTotals overwrites the derived rollup columns after an import
// or an on-demand recalculation.
func (r *PgxPortfolioRepository) UpdatePortfolioTotals(ctx context.Context, portfolioID string, totalAccounts int, totalFaceValue int64, userID string, now time.Time) error {
	query := `
		UPDATE portfolios
		SET total_accounts = $1, total_face_value = $2, last_updated_at = $3, last_updated_by = $4
		WHERE portfolio_id = $5;
	`
	result, err := r.Pool.Exec(ctx, query, totalAccounts, totalFaceValue, now, userID, portfolioID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update totals for portfolio "+portfolioID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("portfolio " + portfolioID + " not found")
	}
	return nil
}
