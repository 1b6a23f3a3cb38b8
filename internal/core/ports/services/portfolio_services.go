package services

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/dto"
)

// PortfolioSvcFacade covers portfolio CRUD and the on-demand rollup
// recomputation shared with the import engine's batch aggregator.
type PortfolioSvcFacade interface {
	CreatePortfolio(ctx context.Context, clientID string, req dto.CreatePortfolioRequest, userID string) (*domain.Portfolio, error)
	GetPortfolioByID(ctx context.Context, clientID, portfolioID string, userID string) (*domain.Portfolio, error)
	ListPortfolios(ctx context.Context, clientID string, userID string) ([]domain.Portfolio, error)

	// RecalculateTotals re-derives totalAccounts and totalFaceValue from the
	// debtor table and persists them. Idempotent and authoritative.
	RecalculateTotals(ctx context.Context, clientID, portfolioID string, userID string) (*domain.Portfolio, error)
}
