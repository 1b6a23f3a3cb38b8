package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/core/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// accountImportMapping maps the source headers used throughout this suite.
var accountImportMapping = map[string]string{
	"Acct":       "accountNumber",
	"SSN":        "ssn",
	"First":      "firstName",
	"Last":       "lastName",
	"Balance":    "originalBalance",
	"CurBalance": "currentBalance",
	"Phone":      "phone1",
	"Phone2":     "phone2",
	"Email":      "email1",
	"Employer":   "employerName",
	"Salary":     "salary",
	"Ref1":       "ref1Name",
	"Ref1Phone":  "ref1Phone",
	"Ref2":       "ref2Name",
	"Lot":        "custom1",
}

type ImportServiceTestSuite struct {
	suite.Suite
	mockPortfolioRepo  *MockPortfolioRepository
	mockDebtorRepo     *MockDebtorRepository
	mockContactRepo    *MockContactRepository
	mockEmploymentRepo *MockEmploymentRepository
	mockReferenceRepo  *MockReferenceRepository
	mockAuth           *MockClientAuthorizer
	service            portssvc.ImportSvcFacade

	clientID    string
	portfolioID string
	userID      string
	portfolio   *domain.Portfolio
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockPortfolioRepo = new(MockPortfolioRepository)
	suite.mockDebtorRepo = new(MockDebtorRepository)
	suite.mockContactRepo = new(MockContactRepository)
	suite.mockEmploymentRepo = new(MockEmploymentRepository)
	suite.mockReferenceRepo = new(MockReferenceRepository)
	suite.mockAuth = new(MockClientAuthorizer)
	suite.service = services.NewImportService(
		suite.mockPortfolioRepo,
		suite.mockDebtorRepo,
		suite.mockContactRepo,
		suite.mockEmploymentRepo,
		suite.mockReferenceRepo,
		suite.mockAuth,
	)

	suite.clientID = uuid.NewString()
	suite.portfolioID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.portfolio = &domain.Portfolio{
		PortfolioID: suite.portfolioID,
		ClientID:    suite.clientID,
		Name:        "Q3 Charge-offs",
	}
}

// expectHappyPathScaffolding wires authorization, portfolio lookup and the
// two snapshots every account import takes.
func (suite *ImportServiceTestSuite) expectHappyPathScaffolding(portfolioDebtors, clientDebtors []domain.Debtor) {
	ctx := mock.Anything
	suite.mockAuth.On("AuthorizeUserAction", ctx, suite.userID, suite.clientID, domain.RoleCollector).Return(nil).Once()
	suite.mockPortfolioRepo.On("FindPortfolioByID", ctx, suite.portfolioID).Return(suite.portfolio, nil).Once()
	suite.mockDebtorRepo.On("ListDebtorsByPortfolio", ctx, suite.portfolioID).Return(portfolioDebtors, nil).Once()
	suite.mockDebtorRepo.On("ListDebtorsByClient", ctx, suite.clientID).Return(clientDebtors, nil).Once()
}

// expectTotalsRecalc wires the post-batch rollup: a re-fetch plus the write.
func (suite *ImportServiceTestSuite) expectTotalsRecalc(finalDebtors []domain.Debtor) {
	var totalFaceValue int64
	for _, d := range finalDebtors {
		totalFaceValue += d.OriginalBalance
	}
	suite.mockDebtorRepo.On("ListDebtorsByPortfolio", mock.Anything, suite.portfolioID).Return(finalDebtors, nil).Once()
	suite.mockPortfolioRepo.On("UpdatePortfolioTotals", mock.Anything, suite.portfolioID, len(finalDebtors), totalFaceValue, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
}

func (suite *ImportServiceTestSuite) importRequest(records []map[string]string) dto.ImportAccountsRequest {
	return dto.ImportAccountsRequest{
		PortfolioID:     suite.portfolioID,
		ClientID:        suite.clientID,
		Records:         records,
		Mappings:        accountImportMapping,
		FileNumberStart: 1,
	}
}

func (suite *ImportServiceTestSuite) TestImportAccounts_CreatesAccountWithChildren() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var savedDebtors []domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) {
			savedDebtors = append(savedDebtors, args.Get(1).(domain.Debtor))
		}).Return(nil).Once()

	var savedContacts []domain.Contact
	suite.mockContactRepo.On("SaveContacts", mock.Anything, mock.AnythingOfType("[]domain.Contact")).
		Run(func(args mock.Arguments) {
			savedContacts = args.Get(1).([]domain.Contact)
		}).Return(nil).Once()

	var savedEmployment domain.EmploymentRecord
	suite.mockEmploymentRepo.On("SaveEmployment", mock.Anything, mock.AnythingOfType("domain.EmploymentRecord")).
		Run(func(args mock.Arguments) {
			savedEmployment = args.Get(1).(domain.EmploymentRecord)
		}).Return(nil).Once()

	var savedReferences []domain.Reference
	suite.mockReferenceRepo.On("SaveReference", mock.Anything, mock.AnythingOfType("domain.Reference")).
		Run(func(args mock.Arguments) {
			savedReferences = append(savedReferences, args.Get(1).(domain.Reference))
		}).Return(nil).Twice()

	record := map[string]string{
		"Acct":      "ACC-1",
		"SSN":       "123-45-6789",
		"First":     "Jane",
		"Last":      "Doe",
		"Balance":   "$1,500.00",
		"Phone":     "555-0001",
		"Phone2":    "555-0002",
		"Email":     "jane@example.com",
		"Employer":  "Acme Corp",
		"Salary":    "52000",
		"Ref1":      "Bob Doe",
		"Ref1Phone": "555-9999",
		"Ref2":      "Carol Doe",
		"Lot":       "lot-42",
	}
	suite.expectTotalsRecalc([]domain.Debtor{{OriginalBalance: 150000}})

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest([]map[string]string{record}), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Equal(0, results.Updated)
	suite.Empty(results.Errors)

	suite.Require().Len(savedDebtors, 1)
	d := savedDebtors[0]
	suite.Equal("ACC-1", d.AccountNumber)
	suite.Equal("Jane", d.FirstName)
	suite.Equal("123-45-6789", d.SSN)
	suite.Equal("6789", d.SSNLast4)
	suite.Equal(int64(150000), d.OriginalBalance)
	suite.Equal(int64(150000), d.CurrentBalance, "currentBalance defaults to originalBalance")
	suite.Equal(domain.StatusOpen, d.Status)
	suite.Equal(fmt.Sprintf("FN-%d-000001", time.Now().Year()), d.FileNumber)
	suite.Equal(map[string]string{"custom1": "lot-42"}, d.CustomFields)
	suite.Equal(suite.userID, d.CreatedBy)

	suite.Require().Len(savedContacts, 3)
	suite.Equal(domain.ContactPhone, savedContacts[0].Type)
	suite.True(savedContacts[0].IsPrimary)
	suite.Equal("Primary", savedContacts[0].Label)
	suite.False(savedContacts[1].IsPrimary)
	suite.Equal("Phone 2", savedContacts[1].Label)
	suite.Equal(domain.ContactEmail, savedContacts[2].Type)
	suite.True(savedContacts[2].IsPrimary, "first email is primary for its own type")

	suite.Equal("Acme Corp", savedEmployment.EmployerName)
	suite.Equal(int64(5200000), savedEmployment.Salary)
	suite.True(savedEmployment.IsCurrent, "imported employment is always current")

	suite.Require().Len(savedReferences, 2)
	suite.Equal("Bob Doe", savedReferences[0].Name)
	suite.Equal("555-9999", savedReferences[0].Phone)
	suite.Equal("Carol Doe", savedReferences[1].Name)

	suite.mockDebtorRepo.AssertExpectations(suite.T())
	suite.mockContactRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportAccounts_DefaultsForSparseRow() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	// Only an SSN: enough identity to create, everything else defaulted.
	records := []map[string]string{{"SSN": "987-65-4321"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Contains(saved.AccountNumber, "AUTO-", "missing account numbers are fabricated")
	suite.Equal("Unknown", saved.FirstName)
	suite.Equal("Unknown", saved.LastName)
	suite.Equal(int64(0), saved.OriginalBalance)
	suite.Equal(int64(0), saved.CurrentBalance)

	suite.mockContactRepo.AssertNotCalled(suite.T(), "SaveContacts", mock.Anything, mock.Anything)
	suite.mockEmploymentRepo.AssertNotCalled(suite.T(), "SaveEmployment", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_CustomLabelColumnsLandInCustomFields() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	req := suite.importRequest([]map[string]string{{"Acct": "ACC-1", "Branch": "B-77", "Lot": "lot-42"}})
	req.Mappings = map[string]string{
		"Acct":   "accountNumber",
		"Branch": "branchCode", // outside the enumeration, stored under the chosen label
		"Lot":    "custom1",
	}

	results, err := suite.service.ImportAccounts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Empty(results.Errors)
	suite.Equal(map[string]string{
		"branchCode": "B-77",
		"custom1":    "lot-42",
	}, saved.CustomFields)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_MappedStatusAndSSNLast4() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	req := suite.importRequest([]map[string]string{{
		"Acct":   "ACC-1",
		"SSN":    "123-45-6789",
		"SSN4":   "0000", // explicitly mapped, wins over the derived last-4
		"Status": "disputed",
	}})
	req.Mappings = map[string]string{
		"Acct":   "accountNumber",
		"SSN":    "ssn",
		"SSN4":   "ssnLast4",
		"Status": "status",
	}

	results, err := suite.service.ImportAccounts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Empty(results.Warnings)
	suite.Equal(domain.StatusDisputed, saved.Status)
	suite.Equal("0000", saved.SSNLast4)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_InvalidStatusWarnsAndDefaultsToOpen() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	req := suite.importRequest([]map[string]string{{"Acct": "ACC-1", "Status": "vibing"}})
	req.Mappings = map[string]string{"Acct": "accountNumber", "Status": "status"}

	results, err := suite.service.ImportAccounts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Empty(results.Errors)
	suite.Require().Len(results.Warnings, 1)
	suite.Contains(results.Warnings[0], "invalid status")
	suite.Equal(domain.StatusOpen, saved.Status)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_RejectsRowWithoutIdentityKeys() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)
	suite.expectTotalsRecalc(nil)

	records := []map[string]string{{"First": "Jane", "Balance": "100"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, results.Created)
	suite.Require().Len(results.Errors, 1)
	suite.Equal("Row 1: missing both accountNumber and ssn", results.Errors[0])
	suite.mockDebtorRepo.AssertNotCalled(suite.T(), "SaveDebtor", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_UpdatesExistingByAccountNumber() {
	ctx := context.Background()
	existing := domain.Debtor{
		DebtorID:      uuid.NewString(),
		ClientID:      suite.clientID,
		PortfolioID:   suite.portfolioID,
		AccountNumber: "ACC-1",
		FirstName:     "Janet",
		Notes:         "old notes",
	}
	suite.expectHappyPathScaffolding([]domain.Debtor{existing}, nil)

	var patch domain.DebtorPatch
	suite.mockDebtorRepo.On("UpdateDebtorFields", mock.Anything, existing.DebtorID, mock.AnythingOfType("domain.DebtorPatch"), suite.userID).
		Run(func(args mock.Arguments) { patch = args.Get(2).(domain.DebtorPatch) }).Return(nil).Once()
	suite.expectTotalsRecalc([]domain.Debtor{existing})

	records := []map[string]string{{"Acct": "ACC-1", "First": "Jane", "Balance": "$2,000.00"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, results.Created)
	suite.Equal(1, results.Updated)

	suite.Require().NotNil(patch.FirstName)
	suite.Equal("Jane", *patch.FirstName)
	suite.Require().NotNil(patch.OriginalBalance)
	suite.Equal(int64(200000), *patch.OriginalBalance)
	suite.Nil(patch.LastName, "absent columns never patch")
	suite.Nil(patch.Notes, "absent columns never blank existing data")

	// The update path never touches children.
	suite.mockContactRepo.AssertNotCalled(suite.T(), "SaveContacts", mock.Anything, mock.Anything)
	suite.mockDebtorRepo.AssertNotCalled(suite.T(), "SaveDebtor", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_UpdatesExistingBySSN() {
	ctx := context.Background()
	existing := domain.Debtor{
		DebtorID:    uuid.NewString(),
		ClientID:    suite.clientID,
		PortfolioID: suite.portfolioID,
		SSN:         "123-45-6789",
	}
	suite.expectHappyPathScaffolding([]domain.Debtor{existing}, nil)
	suite.mockDebtorRepo.On("UpdateDebtorFields", mock.Anything, existing.DebtorID, mock.AnythingOfType("domain.DebtorPatch"), suite.userID).Return(nil).Once()
	suite.expectTotalsRecalc([]domain.Debtor{existing})

	records := []map[string]string{{"SSN": "123-45-6789", "Last": "Doe"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Updated)
	suite.mockDebtorRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportAccounts_ConflictingKeyMatchesResolveByListOrder() {
	ctx := context.Background()
	// The row's SSN and account number match two different pre-existing
	// accounts; the one earlier in the snapshot list takes the update.
	bySSN := domain.Debtor{
		DebtorID:    uuid.NewString(),
		ClientID:    suite.clientID,
		PortfolioID: suite.portfolioID,
		SSN:         "123-45-6789",
	}
	byAcct := domain.Debtor{
		DebtorID:      uuid.NewString(),
		ClientID:      suite.clientID,
		PortfolioID:   suite.portfolioID,
		AccountNumber: "ACC-1",
	}
	suite.expectHappyPathScaffolding([]domain.Debtor{bySSN, byAcct}, nil)
	suite.mockDebtorRepo.On("UpdateDebtorFields", mock.Anything, bySSN.DebtorID, mock.AnythingOfType("domain.DebtorPatch"), suite.userID).Return(nil).Once()
	suite.expectTotalsRecalc([]domain.Debtor{bySSN, byAcct})

	records := []map[string]string{{"Acct": "ACC-1", "SSN": "123-45-6789", "First": "Jane"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Updated)
	suite.mockDebtorRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportAccounts_FullReferenceGroupPersisted() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).Return(nil).Once()
	var savedReference domain.Reference
	suite.mockReferenceRepo.On("SaveReference", mock.Anything, mock.AnythingOfType("domain.Reference")).
		Run(func(args mock.Arguments) { savedReference = args.Get(1).(domain.Reference) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	req := suite.importRequest([]map[string]string{{
		"Acct":     "ACC-1",
		"RefName":  "Bob Neighbor",
		"RefPhone": "555-9999",
		"RefRel":   "Neighbor",
		"RefAddr":  "12 Elm St",
		"RefCity":  "Springfield",
		"RefState": "IL",
		"RefZip":   "62701",
		"RefNotes": "answers evenings",
	}})
	req.Mappings = map[string]string{
		"Acct":     "accountNumber",
		"RefName":  "ref1Name",
		"RefPhone": "ref1Phone",
		"RefRel":   "ref1Relationship",
		"RefAddr":  "ref1Address",
		"RefCity":  "ref1City",
		"RefState": "ref1State",
		"RefZip":   "ref1Zip",
		"RefNotes": "ref1Notes",
	}

	results, err := suite.service.ImportAccounts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Equal("Bob Neighbor", savedReference.Name)
	suite.Equal("555-9999", savedReference.Phone)
	suite.Equal("Neighbor", savedReference.Relationship)
	suite.Equal("12 Elm St", savedReference.Address)
	suite.Equal("Springfield", savedReference.City)
	suite.Equal("IL", savedReference.State)
	suite.Equal("62701", savedReference.Zip)
	suite.Equal("answers evenings", savedReference.Notes)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_CrossPortfolioSSNLinking() {
	ctx := context.Background()
	otherPortfolioDebtor := domain.Debtor{
		DebtorID:    uuid.NewString(),
		ClientID:    suite.clientID,
		PortfolioID: uuid.NewString(), // different portfolio, same client
		SSN:         "123-45-6789",
	}
	suite.expectHappyPathScaffolding(nil, []domain.Debtor{otherPortfolioDebtor})

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	records := []map[string]string{{"SSN": "123-45-6789", "Acct": "ACC-9"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Equal(1, results.Linked)
	suite.Equal(otherPortfolioDebtor.DebtorID, saved.LinkedDebtorID)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_SameSSNInTargetPortfolioDoesNotLink() {
	ctx := context.Background()
	// The only SSN match lives in the portfolio being imported into, so the
	// row takes the update path instead of linking.
	samePortfolioDebtor := domain.Debtor{
		DebtorID:    uuid.NewString(),
		ClientID:    suite.clientID,
		PortfolioID: suite.portfolioID,
		SSN:         "123-45-6789",
	}
	suite.expectHappyPathScaffolding([]domain.Debtor{samePortfolioDebtor}, []domain.Debtor{samePortfolioDebtor})
	suite.mockDebtorRepo.On("UpdateDebtorFields", mock.Anything, samePortfolioDebtor.DebtorID, mock.AnythingOfType("domain.DebtorPatch"), suite.userID).Return(nil).Once()
	suite.expectTotalsRecalc([]domain.Debtor{samePortfolioDebtor})

	records := []map[string]string{{"SSN": "123-45-6789", "First": "Jane"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, results.Linked)
	suite.Equal(1, results.Updated)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_NoIntraBatchDedup() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).Return(nil).Twice()
	suite.expectTotalsRecalc(nil)

	// Identical rows: the snapshot was taken before the batch, so the second
	// row does not see the first row's account.
	row := map[string]string{"SSN": "123-45-6789", "First": "Jane"}
	records := []map[string]string{row, row}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, results.Created)
	suite.Equal(0, results.Updated)
	suite.mockDebtorRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportAccounts_FileNumbersAreBatchRelative() {
	ctx := context.Background()
	existing := domain.Debtor{
		DebtorID:      uuid.NewString(),
		ClientID:      suite.clientID,
		PortfolioID:   suite.portfolioID,
		AccountNumber: "ACC-EXISTING",
	}
	suite.expectHappyPathScaffolding([]domain.Debtor{existing}, nil)

	var fileNumbers []string
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) {
			fileNumbers = append(fileNumbers, args.Get(1).(domain.Debtor).FileNumber)
		}).Return(nil).Twice()
	suite.mockDebtorRepo.On("UpdateDebtorFields", mock.Anything, existing.DebtorID, mock.AnythingOfType("domain.DebtorPatch"), suite.userID).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	req := suite.importRequest([]map[string]string{
		{"Acct": "ACC-NEW-1"},
		{"Acct": "ACC-EXISTING", "First": "Updated"}, // update, consumes no number
		{"Acct": "ACC-NEW-2"},
	})
	req.FileNumberStart = 41

	results, err := suite.service.ImportAccounts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, results.Created)
	suite.Equal(1, results.Updated)
	year := time.Now().Year()
	suite.Equal([]string{
		fmt.Sprintf("FN-%d-000041", year),
		fmt.Sprintf("FN-%d-000042", year),
	}, fileNumbers)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_RowFailureDoesNotAbortBatch() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).Return(assert.AnError).Once()
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	records := []map[string]string{
		{"Acct": "ACC-1"},
		{"Acct": "ACC-2"},
	}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Require().Len(results.Errors, 1)
	suite.Contains(results.Errors[0], "Row 1")
}

func (suite *ImportServiceTestSuite) TestImportAccounts_UnparseableCurrencyIsWarningNotError() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)

	var saved domain.Debtor
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Debtor) }).Return(nil).Once()
	suite.expectTotalsRecalc(nil)

	records := []map[string]string{{"Acct": "ACC-1", "Balance": "N/A"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Created)
	suite.Empty(results.Errors)
	suite.Require().Len(results.Warnings, 1)
	suite.Contains(results.Warnings[0], "Row 1")
	suite.Equal(int64(0), saved.OriginalBalance)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_AuthorizationFailure() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.clientID, domain.RoleCollector).Return(apperrors.ErrForbidden).Once()

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(nil), suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(results)
	suite.mockPortfolioRepo.AssertNotCalled(suite.T(), "FindPortfolioByID", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_PortfolioInAnotherClient() {
	ctx := context.Background()
	suite.mockAuth.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.clientID, domain.RoleCollector).Return(nil).Once()
	foreign := &domain.Portfolio{PortfolioID: suite.portfolioID, ClientID: uuid.NewString()}
	suite.mockPortfolioRepo.On("FindPortfolioByID", mock.Anything, suite.portfolioID).Return(foreign, nil).Once()

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(nil), suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(results)
}

func (suite *ImportServiceTestSuite) TestImportAccounts_TotalsFailureBecomesWarning() {
	ctx := context.Background()
	suite.expectHappyPathScaffolding(nil, nil)
	suite.mockDebtorRepo.On("SaveDebtor", mock.Anything, mock.AnythingOfType("domain.Debtor")).Return(nil).Once()
	suite.mockDebtorRepo.On("ListDebtorsByPortfolio", mock.Anything, suite.portfolioID).Return(nil, assert.AnError).Once()

	records := []map[string]string{{"Acct": "ACC-1"}}

	results, err := suite.service.ImportAccounts(ctx, suite.importRequest(records), suite.userID)

	suite.Require().NoError(err, "a failed rollup never discards the batch outcome")
	suite.Equal(1, results.Created)
	suite.Require().NotEmpty(results.Warnings)
	suite.Contains(results.Warnings[len(results.Warnings)-1], "portfolio totals not updated")
}

// --- Contact import ---

var contactImportMapping = map[string]string{
	"Acct":   "accountNumber",
	"SSN":    "ssn",
	"Phone":  "phone1",
	"Phone2": "phone2",
	"Email":  "email1",
}

func (suite *ImportServiceTestSuite) expectContactScaffolding(portfolioDebtors []domain.Debtor) {
	ctx := mock.Anything
	suite.mockPortfolioRepo.On("FindPortfolioByID", ctx, suite.portfolioID).Return(suite.portfolio, nil).Once()
	suite.mockAuth.On("AuthorizeUserAction", ctx, suite.userID, suite.clientID, domain.RoleCollector).Return(nil).Once()
	suite.mockDebtorRepo.On("ListDebtorsByPortfolio", ctx, suite.portfolioID).Return(portfolioDebtors, nil).Once()
}

func (suite *ImportServiceTestSuite) TestImportContacts_AppendsToMatchedAccount() {
	ctx := context.Background()
	existing := domain.Debtor{
		DebtorID:      uuid.NewString(),
		ClientID:      suite.clientID,
		PortfolioID:   suite.portfolioID,
		AccountNumber: "ACC-1",
	}
	suite.expectContactScaffolding([]domain.Debtor{existing})

	// The debtor already has a primary phone; appended phones must not steal it.
	suite.mockContactRepo.On("ListContactsByDebtor", mock.Anything, existing.DebtorID).Return([]domain.Contact{
		{ContactID: uuid.NewString(), DebtorID: existing.DebtorID, Type: domain.ContactPhone, IsPrimary: true},
	}, nil).Once()

	var savedContacts []domain.Contact
	suite.mockContactRepo.On("SaveContacts", mock.Anything, mock.AnythingOfType("[]domain.Contact")).
		Run(func(args mock.Arguments) { savedContacts = args.Get(1).([]domain.Contact) }).Return(nil).Once()

	req := dto.ImportContactsRequest{
		PortfolioID: suite.portfolioID,
		Records:     []map[string]string{{"Acct": "ACC-1", "Phone": "555-0001", "Email": "jane@example.com"}},
		Mappings:    contactImportMapping,
	}

	results, err := suite.service.ImportContacts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(1, results.Matched)
	suite.Equal(2, results.Added)
	suite.Empty(results.Errors)

	suite.Require().Len(savedContacts, 2)
	suite.Equal(domain.ContactPhone, savedContacts[0].Type)
	suite.False(savedContacts[0].IsPrimary, "existing primary phone is kept")
	suite.Equal(domain.ContactEmail, savedContacts[1].Type)
	suite.True(savedContacts[1].IsPrimary, "first email for the debtor becomes primary")
}

func (suite *ImportServiceTestSuite) TestImportContacts_UnmatchedRowIsError() {
	ctx := context.Background()
	suite.expectContactScaffolding(nil)

	req := dto.ImportContactsRequest{
		PortfolioID: suite.portfolioID,
		Records:     []map[string]string{{"Acct": "ACC-MISSING", "Phone": "555-0001"}},
		Mappings:    contactImportMapping,
	}

	results, err := suite.service.ImportContacts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, results.Matched)
	suite.Equal(0, results.Added)
	suite.Require().Len(results.Errors, 1)
	suite.Equal("Row 1: no matching account", results.Errors[0])
	suite.mockContactRepo.AssertNotCalled(suite.T(), "SaveContacts", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportContacts_MissingIdentityKeysIsError() {
	ctx := context.Background()
	suite.expectContactScaffolding(nil)

	req := dto.ImportContactsRequest{
		PortfolioID: suite.portfolioID,
		Records:     []map[string]string{{"Phone": "555-0001"}},
		Mappings:    contactImportMapping,
	}

	results, err := suite.service.ImportContacts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results.Errors, 1)
	suite.Equal("Row 1: missing both accountNumber and ssn", results.Errors[0])
}

func (suite *ImportServiceTestSuite) TestImportContacts_NeverCreatesAccounts() {
	ctx := context.Background()
	suite.expectContactScaffolding(nil)

	req := dto.ImportContactsRequest{
		PortfolioID: suite.portfolioID,
		Records: []map[string]string{
			{"Acct": "ACC-NEW", "Phone": "555-0001"},
			{"SSN": "123-45-6789", "Phone": "555-0002"},
		},
		Mappings: contactImportMapping,
	}

	results, err := suite.service.ImportContacts(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Len(results.Errors, 2)
	suite.mockDebtorRepo.AssertNotCalled(suite.T(), "SaveDebtor", mock.Anything, mock.Anything)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
