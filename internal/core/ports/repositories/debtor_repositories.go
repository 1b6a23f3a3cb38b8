package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// DebtorReader defines read operations for debtor data.
type DebtorReader interface {
	// FindDebtorByID retrieves a specific debtor by its unique identifier.
	FindDebtorByID(ctx context.Context, debtorID string) (*domain.Debtor, error)

	// ListDebtorsByPortfolio retrieves every debtor in a portfolio. The import
	// engine snapshots this once per batch; the paginated variant serves the
	// HTTP listing.
	ListDebtorsByPortfolio(ctx context.Context, portfolioID string) ([]domain.Debtor, error)

	// ListDebtorsByPortfolioPaged retrieves a paginated list of debtors for a portfolio.
	ListDebtorsByPortfolioPaged(ctx context.Context, portfolioID string, limit int, offset int) ([]domain.Debtor, error)

	// ListDebtorsByClient retrieves every debtor across all of a client's
	// portfolios, used for cross-portfolio SSN linkage.
	ListDebtorsByClient(ctx context.Context, clientID string) ([]domain.Debtor, error)
}

// DebtorWriter defines write operations for debtor data.
type DebtorWriter interface {
	// SaveDebtor persists a new debtor.
	SaveDebtor(ctx context.Context, debtor domain.Debtor) error

	// UpdateDebtorFields applies a partial patch to an existing debtor.
	// Fields not set in the patch are left untouched.
	UpdateDebtorFields(ctx context.Context, debtorID string, patch domain.DebtorPatch, userID string) error
}

// DebtorRepositoryFacade combines all debtor-related repository interfaces.
type DebtorRepositoryFacade interface {
	DebtorReader
	DebtorWriter
}
