package repositories

import (
	"context"
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// PortfolioReader defines read operations for portfolio data.
type PortfolioReader interface {
	// FindPortfolioByID retrieves a portfolio by its unique identifier.
	FindPortfolioByID(ctx context.Context, portfolioID string) (*domain.Portfolio, error)

	// ListPortfoliosByClient retrieves all portfolios for a client.
	ListPortfoliosByClient(ctx context.Context, clientID string) ([]domain.Portfolio, error)
}

// PortfolioWriter defines write operations for portfolio data.
type PortfolioWriter interface {
	// SavePortfolio persists a new portfolio.
	SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error

	// UpdatePortfolioTotals overwrites the derived rollup columns.
	UpdatePortfolioTotals(ctx context.Context, portfolioID string, totalAccounts int, totalFaceValue int64, userID string, now time.Time) error
}

// PortfolioRepositoryFacade combines all portfolio-related repository interfaces.
type PortfolioRepositoryFacade interface {
	PortfolioReader
	PortfolioWriter
}
