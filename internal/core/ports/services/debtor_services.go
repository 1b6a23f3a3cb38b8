package services

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/dto"
)

// DebtorSvcFacade covers manual debtor CRUD and child-entity access used by
// collectors working accounts outside the import path.
type DebtorSvcFacade interface {
	CreateDebtor(ctx context.Context, clientID string, req dto.CreateDebtorRequest, userID string) (*domain.Debtor, error)
	GetDebtorByID(ctx context.Context, clientID, debtorID string, userID string) (*dto.DebtorDetail, error)
	ListDebtorsByPortfolio(ctx context.Context, clientID, portfolioID string, limit, offset int, userID string) ([]domain.Debtor, error)
	UpdateDebtor(ctx context.Context, clientID, debtorID string, req dto.UpdateDebtorRequest, userID string) (*domain.Debtor, error)

	AddContact(ctx context.Context, clientID, debtorID string, req dto.AddContactRequest, userID string) (*domain.Contact, error)
	MarkContactValidity(ctx context.Context, clientID, debtorID, contactID string, isValid bool, userID string) error
}
