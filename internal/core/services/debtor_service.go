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

// DebtorService handles manual debtor CRUD and child-entity access used by
// collectors outside the import path.
type DebtorService struct {
	debtorRepo     portsrepo.DebtorRepositoryFacade
	contactRepo    portsrepo.ContactRepositoryFacade
	employmentRepo portsrepo.EmploymentReader
	referenceRepo  portsrepo.ReferenceReader
	portfolioRepo  portsrepo.PortfolioReader
	authSvc        portssvc.ClientAuthorizerSvc
}

// NewDebtorService creates a new DebtorService.
func NewDebtorService(
	dr portsrepo.DebtorRepositoryFacade,
	cr portsrepo.ContactRepositoryFacade,
	er portsrepo.EmploymentReader,
	rr portsrepo.ReferenceReader,
	pr portsrepo.PortfolioReader,
	auth portssvc.ClientAuthorizerSvc,
) portssvc.DebtorSvcFacade {
	return &DebtorService{
		debtorRepo:     dr,
		contactRepo:    cr,
		employmentRepo: er,
		referenceRepo:  rr,
		portfolioRepo:  pr,
		authSvc:        auth,
	}
}

var _ portssvc.DebtorSvcFacade = (*DebtorService)(nil)

func (s *DebtorService) CreateDebtor(ctx context.Context, clientID string, req dto.CreateDebtorRequest, userID string) (*domain.Debtor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio.ClientID != clientID {
		return nil, apperrors.ErrNotFound
	}

	currentBalance := req.OriginalBalance
	if req.CurrentBalance != nil {
		currentBalance = *req.CurrentBalance
	}

	now := time.Now()
	debtor := domain.Debtor{
		DebtorID:         uuid.NewString(),
		ClientID:         clientID,
		PortfolioID:      req.PortfolioID,
		FileNumber:       req.FileNumber,
		AccountNumber:    req.AccountNumber,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		SSN:              req.SSN,
		SSNLast4:         ssnLast4(req.SSN),
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Zip:              req.Zip,
		OriginalCreditor: req.OriginalCreditor,
		OriginalBalance:  req.OriginalBalance,
		CurrentBalance:   currentBalance,
		Status:           domain.StatusOpen,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if debtor.AccountNumber == "" {
		debtor.AccountNumber = autoAccountNumber(now)
	}

	if err := s.debtorRepo.SaveDebtor(ctx, debtor); err != nil {
		logger.Error("Failed to save debtor", slog.String("error", err.Error()), slog.String("portfolio_id", req.PortfolioID))
		return nil, fmt.Errorf("failed to create debtor: %w", err)
	}
	return &debtor, nil
}

// findInClient loads a debtor and verifies tenancy.
func (s *DebtorService) findInClient(ctx context.Context, clientID, debtorID string) (*domain.Debtor, error) {
	debtor, err := s.debtorRepo.FindDebtorByID(ctx, debtorID)
	if err != nil {
		return nil, err
	}
	if debtor.ClientID != clientID {
		return nil, apperrors.ErrNotFound
	}
	return debtor, nil
}

func (s *DebtorService) GetDebtorByID(ctx context.Context, clientID, debtorID string, userID string) (*dto.DebtorDetail, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}
	debtor, err := s.findInClient(ctx, clientID, debtorID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contactRepo.ListContactsByDebtor(ctx, debtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts for debtor %s: %w", debtorID, err)
	}
	employment, err := s.employmentRepo.ListEmploymentByDebtor(ctx, debtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment for debtor %s: %w", debtorID, err)
	}
	references, err := s.referenceRepo.ListReferencesByDebtor(ctx, debtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list references for debtor %s: %w", debtorID, err)
	}

	return &dto.DebtorDetail{
		Debtor:     dto.ToDebtorResponse(debtor),
		Contacts:   contacts,
		Employment: employment,
		References: references,
	}, nil
}

func (s *DebtorService) ListDebtorsByPortfolio(ctx context.Context, clientID, portfolioID string, limit, offset int, userID string) ([]domain.Debtor, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleViewer); err != nil {
		return nil, err
	}
	portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio.ClientID != clientID {
		return nil, apperrors.ErrNotFound
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.debtorRepo.ListDebtorsByPortfolioPaged(ctx, portfolioID, limit, offset)
}

func (s *DebtorService) UpdateDebtor(ctx context.Context, clientID, debtorID string, req dto.UpdateDebtorRequest, userID string) (*domain.Debtor, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	if _, err := s.findInClient(ctx, clientID, debtorID); err != nil {
		return nil, err
	}

	patch := domain.DebtorPatch{
		AssignedCollectorID: req.AssignedCollectorID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		LastContactDate:     req.LastContactDate,
		NextContactDate:     req.NextContactDate,
		Notes:               req.Notes,
	}
	if req.Status != nil {
		status := domain.DebtorStatus(*req.Status)
		patch.Status = &status
	}

	if !patch.IsEmpty() {
		if err := s.debtorRepo.UpdateDebtorFields(ctx, debtorID, patch, userID); err != nil {
			return nil, fmt.Errorf("failed to update debtor %s: %w", debtorID, err)
		}
	}
	return s.debtorRepo.FindDebtorByID(ctx, debtorID)
}

func (s *DebtorService) AddContact(ctx context.Context, clientID, debtorID string, req dto.AddContactRequest, userID string) (*domain.Contact, error) {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	if _, err := s.findInClient(ctx, clientID, debtorID); err != nil {
		return nil, err
	}

	contactType := domain.ContactType(req.Type)
	existing, err := s.contactRepo.ListContactsByDebtor(ctx, debtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts for debtor %s: %w", debtorID, err)
	}
	isPrimary := true
	for _, c := range existing {
		if c.Type == contactType {
			isPrimary = false
			break
		}
	}

	label := req.Label
	if label == "" {
		label = "Primary"
		if !isPrimary {
			label = "Other"
		}
	}

	now := time.Now()
	contact := domain.Contact{
		ContactID: uuid.NewString(),
		DebtorID:  debtorID,
		Type:      contactType,
		Value:     req.Value,
		Label:     label,
		IsPrimary: isPrimary,
		IsValid:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}
	return &contact, nil
}

func (s *DebtorService) MarkContactValidity(ctx context.Context, clientID, debtorID, contactID string, isValid bool, userID string) error {
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, clientID, domain.RoleCollector); err != nil {
		return err
	}
	if _, err := s.findInClient(ctx, clientID, debtorID); err != nil {
		return err
	}
	return s.contactRepo.MarkContactValidity(ctx, contactID, isValid, userID)
}
