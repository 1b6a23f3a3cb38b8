package services_test

import (
	"context"
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsByUserID(ctx context.Context, userID string) ([]domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindUserClientRole(ctx context.Context, userID, clientID string) (*domain.UserClient, error) {
	args := m.Called(ctx, userID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserClient), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) AddUserToClient(ctx context.Context, membership domain.UserClient) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

// MockPortfolioRepository is a mock type for the PortfolioRepositoryFacade interface
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) FindPortfolioByID(ctx context.Context, portfolioID string) (*domain.Portfolio, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) ListPortfoliosByClient(ctx context.Context, clientID string) ([]domain.Portfolio, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	args := m.Called(ctx, portfolio)
	return args.Error(0)
}

func (m *MockPortfolioRepository) UpdatePortfolioTotals(ctx context.Context, portfolioID string, totalAccounts int, totalFaceValue int64, userID string, now time.Time) error {
	args := m.Called(ctx, portfolioID, totalAccounts, totalFaceValue, userID, now)
	return args.Error(0)
}

// MockDebtorRepository is a mock type for the DebtorRepositoryFacade interface
type MockDebtorRepository struct {
	mock.Mock
}

func (m *MockDebtorRepository) FindDebtorByID(ctx context.Context, debtorID string) (*domain.Debtor, error) {
	args := m.Called(ctx, debtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) ListDebtorsByPortfolio(ctx context.Context, portfolioID string) ([]domain.Debtor, error) {
	args := m.Called(ctx, portfolioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) ListDebtorsByPortfolioPaged(ctx context.Context, portfolioID string, limit int, offset int) ([]domain.Debtor, error) {
	args := m.Called(ctx, portfolioID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) ListDebtorsByClient(ctx context.Context, clientID string) ([]domain.Debtor, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debtor), args.Error(1)
}

func (m *MockDebtorRepository) SaveDebtor(ctx context.Context, debtor domain.Debtor) error {
	args := m.Called(ctx, debtor)
	return args.Error(0)
}

func (m *MockDebtorRepository) UpdateDebtorFields(ctx context.Context, debtorID string, patch domain.DebtorPatch, userID string) error {
	args := m.Called(ctx, debtorID, patch, userID)
	return args.Error(0)
}

// MockContactRepository is a mock type for the ContactRepositoryFacade interface
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ListContactsByDebtor(ctx context.Context, debtorID string) ([]domain.Contact, error) {
	args := m.Called(ctx, debtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) SaveContacts(ctx context.Context, contacts []domain.Contact) error {
	args := m.Called(ctx, contacts)
	return args.Error(0)
}

func (m *MockContactRepository) MarkContactValidity(ctx context.Context, contactID string, isValid bool, userID string) error {
	args := m.Called(ctx, contactID, isValid, userID)
	return args.Error(0)
}

// MockEmploymentRepository is a mock type for the EmploymentWriter interface
type MockEmploymentRepository struct {
	mock.Mock
}

func (m *MockEmploymentRepository) SaveEmployment(ctx context.Context, record domain.EmploymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockReferenceRepository is a mock type for the ReferenceWriter interface
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) SaveReference(ctx context.Context, reference domain.Reference) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

// MockImportMappingRepository is a mock type for the ImportMappingRepositoryFacade interface
type MockImportMappingRepository struct {
	mock.Mock
}

func (m *MockImportMappingRepository) FindImportMappingByID(ctx context.Context, mappingID string) (*domain.ImportMapping, error) {
	args := m.Called(ctx, mappingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportMapping), args.Error(1)
}

func (m *MockImportMappingRepository) ListImportMappingsByClient(ctx context.Context, clientID string) ([]domain.ImportMapping, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ImportMapping), args.Error(1)
}

func (m *MockImportMappingRepository) SaveImportMapping(ctx context.Context, mapping domain.ImportMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockImportMappingRepository) UpdateImportMapping(ctx context.Context, mapping domain.ImportMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockImportMappingRepository) DeleteImportMapping(ctx context.Context, mappingID string) error {
	args := m.Called(ctx, mappingID)
	return args.Error(0)
}

func (m *MockImportMappingRepository) ClearDefaultMapping(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// MockClientAuthorizer is a mock type for the ClientAuthorizerSvc interface
type MockClientAuthorizer struct {
	mock.Mock
}

func (m *MockClientAuthorizer) AuthorizeUserAction(ctx context.Context, userID, clientID string, requiredRole domain.UserClientRole) error {
	args := m.Called(ctx, userID, clientID, requiredRole)
	return args.Error(0)
}
