package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
)

// PortfolioService handles business logic related to purchased debt
// portfolios, including the derived account/face-value rollups.
type PortfolioService struct {
	portfolioRepo portsrepo.PortfolioRepositoryFacade
	debtorRepo    portsrepo.DebtorReader
	authSvc       portssvc.ClientAuthorizerSvc
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(pr portsrepo.PortfolioRepositoryFacade, dr portsrepo.DebtorReader, auth portssvc.ClientAuthorizerSvc) portssvc.PortfolioSvcFacade {
	return &PortfolioService{
		portfolioRepo: pr,
		debtorRepo:    dr,
		authSvc:       auth,
	}
}

var _ portssvc.PortfolioSvcFacade = (*PortfolioService)(nil)

func (s *PortfolioService) CreatePortfolio(ctx context.Context, clientID string, req dto.CreatePortfolioRequest, userID string) (*domain.Portfolio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	now := time.Now()
	portfolio := domain.Portfolio{
		PortfolioID:      uuid.NewString(),
		ClientID:         clientID,
		Name:             req.Name,
		OriginalCreditor: req.OriginalCreditor,
		PurchaseDate:     req.PurchaseDate,
		PurchaseCost:     req.PurchaseCost,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.portfolioRepo.SavePortfolio(ctx, portfolio); err != nil {
		logger.Error("Failed to save portfolio", slog.String("error", err.Error()), slog.String("portfolio_name", req.Name))
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	logger.Info("Portfolio created", slog.String("portfolio_id", portfolio.PortfolioID), slog.String("client_id", clientID))
	return &portfolio, nil
}

// findInClient loads a portfolio and verifies it belongs to the client. A
// portfolio from another tenant is reported as not found, not forbidden.
func (s *PortfolioService) findInClient(ctx context.Context, clientID, portfolioID string) (*domain.Portfolio, error) {
	portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio.ClientID != clientID {
		return nil, apperrors.ErrNotFound
	}
	return portfolio, nil
}

func (s *PortfolioService) GetPortfolioByID(ctx context.Context, clientID, portfolioID string, userID string) (*domain.Portfolio, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findInClient(ctx, clientID, portfolioID)
}

func (s *PortfolioService) ListPortfolios(ctx context.Context, clientID string, userID string) ([]domain.Portfolio, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}
	portfolios, err := s.portfolioRepo.ListPortfoliosByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios for client %s: %w", clientID, err)
	}
	return portfolios, nil
}

// RecalculateTotals re-derives totalAccounts and totalFaceValue from the
// debtor table and persists them. The import engine calls this after every
// batch; it is also exposed for on-demand correction.
func (s *PortfolioService) RecalculateTotals(ctx context.Context, clientID, portfolioID string, userID string) (*domain.Portfolio, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	portfolio, err := s.findInClient(ctx, clientID, portfolioID)
	if err != nil {
		return nil, err
	}

	debtors, err := s.debtorRepo.ListDebtorsByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debtors for portfolio %s: %w", portfolioID, err)
	}

	totalAccounts := len(debtors)
	var totalFaceValue int64
	for _, d := range debtors {
		totalFaceValue += d.OriginalBalance
	}

	now := time.Now()
	if err := s.portfolioRepo.UpdatePortfolioTotals(ctx, portfolioID, totalAccounts, totalFaceValue, userID, now); err != nil {
		logger.Error("Failed to persist portfolio totals", slog.String("error", err.Error()), slog.String("portfolio_id", portfolioID))
		return nil, fmt.Errorf("failed to update totals for portfolio %s: %w", portfolioID, err)
	}

	portfolio.TotalAccounts = totalAccounts
	portfolio.TotalFaceValue = totalFaceValue
	portfolio.LastUpdatedAt = now
	portfolio.LastUpdatedBy = userID
	logger.Info("Portfolio totals recalculated",
		slog.String("portfolio_id", portfolioID),
		slog.Int("total_accounts", totalAccounts),
		slog.Int64("total_face_value", totalFaceValue),
	)
	return portfolio, nil
}
