package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/recovra/debt_collection_app/internal/apperrors"
	"github.com/recovra/debt_collection_app/internal/core/domain"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/dto"
	"github.com/recovra/debt_collection_app/internal/middleware"
	"github.com/recovra/debt_collection_app/internal/utils/importing"
)

// ImportService runs the bulk account and contact import pipelines.
type ImportService struct {
	portfolioRepo  portsrepo.PortfolioRepositoryFacade
	debtorRepo     portsrepo.DebtorRepositoryFacade
	contactRepo    portsrepo.ContactRepositoryFacade
	employmentRepo portsrepo.EmploymentWriter
	referenceRepo  portsrepo.ReferenceWriter
	authSvc        portssvc.ClientAuthorizerSvc
}

// NewImportService creates a new ImportService.
func NewImportService(
	pr portsrepo.PortfolioRepositoryFacade,
	dr portsrepo.DebtorRepositoryFacade,
	cr portsrepo.ContactRepositoryFacade,
	er portsrepo.EmploymentWriter,
	rr portsrepo.ReferenceWriter,
	auth portssvc.ClientAuthorizerSvc,
) portssvc.ImportSvcFacade {
	return &ImportService{
		portfolioRepo:  pr,
		debtorRepo:     dr,
		contactRepo:    cr,
		employmentRepo: er,
		referenceRepo:  rr,
		authSvc:        auth,
	}
}

var _ portssvc.ImportSvcFacade = (*ImportService)(nil)

// debtorSnapshot indexes the accounts that existed before the batch started.
// Rows created during the batch are invisible to later rows: duplicate rows
// in one file each create their own account.
type debtorSnapshot struct {
	debtors         []domain.Debtor
	byAccountNumber map[string]int
	bySSN           map[string]int
}

func snapshotDebtors(debtors []domain.Debtor) *debtorSnapshot {
	snap := &debtorSnapshot{
		debtors:         debtors,
		byAccountNumber: make(map[string]int, len(debtors)),
		bySSN:           make(map[string]int, len(debtors)),
	}
	for i := range debtors {
		d := &debtors[i]
		if d.AccountNumber != "" {
			if _, exists := snap.byAccountNumber[d.AccountNumber]; !exists {
				snap.byAccountNumber[d.AccountNumber] = i
			}
		}
		if d.SSN != "" {
			if _, exists := snap.bySSN[d.SSN]; !exists {
				snap.bySSN[d.SSN] = i
			}
		}
	}
	return snap
}

// match finds an existing account by accountNumber or SSN equality. When the
// two keys hit different accounts, the one earlier in the snapshot's list
// order wins.
func (s *debtorSnapshot) match(accountNumber, ssn string) *domain.Debtor {
	best := -1
	if accountNumber != "" {
		if i, ok := s.byAccountNumber[accountNumber]; ok {
			best = i
		}
	}
	if ssn != "" {
		if i, ok := s.bySSN[ssn]; ok && (best == -1 || i < best) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &s.debtors[best]
}

// ImportAccounts processes a parsed tabular batch against a portfolio. Each
// row is resolved against a snapshot of existing accounts taken before the
// first row runs; failures are per-row and never abort the batch.
func (s *ImportService) ImportAccounts(ctx context.Context, req dto.ImportAccountsRequest, userID string) (*dto.ImportResults, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authSvc.AuthorizeUserAction(ctx, userID, req.ClientID, domain.RoleCollector); err != nil {
		return nil, err
	}
	portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio.ClientID != req.ClientID {
		return nil, apperrors.ErrNotFound
	}

	// Snapshot the portfolio for identity resolution and the whole client for
	// cross-portfolio SSN linkage.
	portfolioDebtors, err := s.debtorRepo.ListDebtorsByPortfolio(ctx, req.PortfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot portfolio %s: %w", req.PortfolioID, err)
	}
	clientDebtors, err := s.debtorRepo.ListDebtorsByClient(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot client %s: %w", req.ClientID, err)
	}
	snap := snapshotDebtors(portfolioDebtors)
	linkSnap := crossPortfolioIndex(clientDebtors, req.PortfolioID)

	alloc := newFileNumberAllocator(time.Now(), req.FileNumberStart)
	results := &dto.ImportResults{Errors: []string{}, Warnings: []string{}}

	for i, record := range req.Records {
		rowNum := i + 1
		row, warnings := importing.CoerceRow(record, req.Mappings, "accounts")
		for _, w := range warnings {
			results.Warnings = append(results.Warnings, fmt.Sprintf("Row %d: %s", rowNum, w))
		}

		accountNumber := row.Str("accountNumber")
		ssn := row.Str("ssn")
		if accountNumber == "" && ssn == "" {
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: missing both accountNumber and ssn", rowNum))
			continue
		}

		if existing := snap.match(accountNumber, ssn); existing != nil {
			if err := s.updateExisting(ctx, existing, row, userID); err != nil {
				results.Errors = append(results.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
				continue
			}
			results.Updated++
			continue
		}

		linked, childWarnings, err := s.createDebtor(ctx, portfolio, row, alloc, linkSnap, userID)
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		for _, w := range childWarnings {
			results.Warnings = append(results.Warnings, fmt.Sprintf("Row %d: %s", rowNum, w))
		}
		results.Created++
		if linked {
			results.Linked++
		}
	}

	if err := s.recalculateTotals(ctx, req.PortfolioID, userID); err != nil {
		// The rows are already committed; surface the rollup failure without
		// discarding the batch outcome.
		logger.Error("Failed to update portfolio totals after import", slog.String("error", err.Error()), slog.String("portfolio_id", req.PortfolioID))
		results.Warnings = append(results.Warnings, fmt.Sprintf("portfolio totals not updated: %v", err))
	}

	logger.Info("Account import finished",
		slog.String("portfolio_id", req.PortfolioID),
		slog.Int("created", results.Created),
		slog.Int("updated", results.Updated),
		slog.Int("linked", results.Linked),
		slog.Int("errors", len(results.Errors)),
	)
	return results, nil
}

// crossPortfolioIndex maps SSN to an account in any portfolio of the client
// other than the one being imported into. The earliest-created account wins.
func crossPortfolioIndex(clientDebtors []domain.Debtor, excludePortfolioID string) map[string]*domain.Debtor {
	index := make(map[string]*domain.Debtor)
	for i := range clientDebtors {
		d := &clientDebtors[i]
		if d.PortfolioID == excludePortfolioID || d.SSN == "" {
			continue
		}
		if _, exists := index[d.SSN]; !exists {
			index[d.SSN] = d
		}
	}
	return index
}

// updateExisting applies a partial patch built from the mapped row. Children
// are never touched on the update path.
func (s *ImportService) updateExisting(ctx context.Context, existing *domain.Debtor, row importing.MappedRow, userID string) error {
	patch := buildDebtorPatch(row)
	if patch.IsEmpty() {
		return nil
	}
	return s.debtorRepo.UpdateDebtorFields(ctx, existing.DebtorID, patch, userID)
}

// buildDebtorPatch lifts only the fields present in the row into a patch, so
// sparse rows never blank out existing data.
func buildDebtorPatch(row importing.MappedRow) domain.DebtorPatch {
	var patch domain.DebtorPatch
	setStr := func(field string, dst **string) {
		if v, ok := row.Get(field); ok {
			value := v
			*dst = &value
		}
	}
	setStr("accountNumber", &patch.AccountNumber)
	setStr("firstName", &patch.FirstName)
	setStr("lastName", &patch.LastName)
	setStr("dateOfBirth", &patch.DateOfBirth)
	setStr("address", &patch.Address)
	setStr("city", &patch.City)
	setStr("state", &patch.State)
	setStr("zip", &patch.Zip)
	setStr("originalCreditor", &patch.OriginalCreditor)
	setStr("chargeOffDate", &patch.ChargeOffDate)
	setStr("lastPaymentDate", &patch.LastPaymentDate)
	setStr("notes", &patch.Notes)
	if ssn, ok := row.Get("ssn"); ok {
		patch.SSN = &ssn
		last4 := ssnLast4(ssn)
		patch.SSNLast4 = &last4
	}
	// An explicitly mapped last-4 wins over the derived one.
	setStr("ssnLast4", &patch.SSNLast4)
	if v, ok := row.Get("status"); ok {
		status := domain.DebtorStatus(v)
		if domain.IsValidStatus(status) {
			patch.Status = &status
		}
	}
	if cents, ok := row.Money("originalBalance"); ok {
		patch.OriginalBalance = &cents
	}
	if cents, ok := row.Money("currentBalance"); ok {
		patch.CurrentBalance = &cents
	}
	patch.CustomFields = row.CustomFields()
	return patch
}

// createDebtor materializes a new account with its child entities. Child
// failures are absorbed as warnings: the account itself is already created.
func (s *ImportService) createDebtor(
	ctx context.Context,
	portfolio *domain.Portfolio,
	row importing.MappedRow,
	alloc *fileNumberAllocator,
	linkSnap map[string]*domain.Debtor,
	userID string,
) (linked bool, warnings []string, err error) {
	now := time.Now()

	accountNumber := row.Str("accountNumber")
	if accountNumber == "" {
		accountNumber = autoAccountNumber(now)
	}
	firstName := row.Str("firstName")
	if firstName == "" {
		firstName = "Unknown"
	}
	lastName := row.Str("lastName")
	if lastName == "" {
		lastName = "Unknown"
	}

	originalBalance, _ := row.Money("originalBalance")
	currentBalance, hasCurrent := row.Money("currentBalance")
	if !hasCurrent {
		currentBalance = originalBalance
	}

	ssn := row.Str("ssn")
	last4 := row.Str("ssnLast4")
	if last4 == "" {
		last4 = ssnLast4(ssn)
	}
	status := domain.StatusOpen
	if mapped := row.Str("status"); mapped != "" {
		if domain.IsValidStatus(domain.DebtorStatus(mapped)) {
			status = domain.DebtorStatus(mapped)
		} else {
			warnings = append(warnings, fmt.Sprintf("invalid status %q, using %q", mapped, domain.StatusOpen))
		}
	}

	debtor := domain.Debtor{
		DebtorID:         uuid.NewString(),
		ClientID:         portfolio.ClientID,
		PortfolioID:      portfolio.PortfolioID,
		FileNumber:       alloc.Next(),
		AccountNumber:    accountNumber,
		FirstName:        firstName,
		LastName:         lastName,
		SSN:              ssn,
		SSNLast4:         last4,
		DateOfBirth:      row.Str("dateOfBirth"),
		Address:          row.Str("address"),
		City:             row.Str("city"),
		State:            row.Str("state"),
		Zip:              row.Str("zip"),
		OriginalCreditor: row.Str("originalCreditor"),
		OriginalBalance:  originalBalance,
		CurrentBalance:   currentBalance,
		Status:           status,
		ChargeOffDate:    row.Str("chargeOffDate"),
		LastPaymentDate:  row.Str("lastPaymentDate"),
		Notes:            row.Str("notes"),
		CustomFields:     row.CustomFields(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if ssn != "" {
		if other, ok := linkSnap[ssn]; ok {
			debtor.LinkedDebtorID = other.DebtorID
			linked = true
		}
	}

	if err := s.debtorRepo.SaveDebtor(ctx, debtor); err != nil {
		return false, nil, err
	}

	warnings = append(warnings, s.createContacts(ctx, debtor.DebtorID, row, now, userID)...)
	warnings = append(warnings, s.createEmployment(ctx, debtor.DebtorID, row, now, userID)...)
	warnings = append(warnings, s.createReferences(ctx, debtor.DebtorID, row, now, userID)...)
	return linked, warnings, nil
}

// createContacts fans the row's phone and email slots out into contact rows.
// The first phone and the first email each become the primary for their type.
func (s *ImportService) createContacts(ctx context.Context, debtorID string, row importing.MappedRow, now time.Time, userID string) []string {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	var contacts []domain.Contact
	for i, phone := range row.Phones() {
		contacts = append(contacts, domain.Contact{
			ContactID:   uuid.NewString(),
			DebtorID:    debtorID,
			Type:        domain.ContactPhone,
			Value:       phone.Number,
			Label:       phone.Label,
			IsPrimary:   i == 0,
			IsValid:     true,
			AuditFields: audit,
		})
	}
	for i, email := range row.Emails() {
		contacts = append(contacts, domain.Contact{
			ContactID:   uuid.NewString(),
			DebtorID:    debtorID,
			Type:        domain.ContactEmail,
			Value:       email.Address,
			Label:       email.Label,
			IsPrimary:   i == 0,
			IsValid:     true,
			AuditFields: audit,
		})
	}
	if len(contacts) == 0 {
		return nil
	}
	if err := s.contactRepo.SaveContacts(ctx, contacts); err != nil {
		return []string{fmt.Sprintf("contacts not saved: %v", err)}
	}
	return nil
}

// createEmployment creates at most one employment record, and only when the
// row names an employer. Imported employment is always marked current.
func (s *ImportService) createEmployment(ctx context.Context, debtorID string, row importing.MappedRow, now time.Time, userID string) []string {
	employerName := row.Str("employerName")
	if employerName == "" {
		return nil
	}
	salary, _ := row.Money("salary")
	record := domain.EmploymentRecord{
		EmploymentID:    uuid.NewString(),
		DebtorID:        debtorID,
		EmployerName:    employerName,
		EmployerPhone:   row.Str("employerPhone"),
		EmployerAddress: row.Str("employerAddress"),
		Position:        row.Str("jobTitle"),
		Salary:          salary,
		IsCurrent:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.employmentRepo.SaveEmployment(ctx, record); err != nil {
		return []string{fmt.Sprintf("employment not saved: %v", err)}
	}
	return nil
}

// createReferences creates one reference per filled group, keyed on the name
// column being present.
func (s *ImportService) createReferences(ctx context.Context, debtorID string, row importing.MappedRow, now time.Time, userID string) []string {
	var warnings []string
	for _, ref := range row.References() {
		reference := domain.Reference{
			ReferenceID:  uuid.NewString(),
			DebtorID:     debtorID,
			Name:         ref.Name,
			Relationship: ref.Relationship,
			Phone:        ref.Phone,
			Address:      ref.Address,
			City:         ref.City,
			State:        ref.State,
			Zip:          ref.Zip,
			Notes:        ref.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if err := s.referenceRepo.SaveReference(ctx, reference); err != nil {
			warnings = append(warnings, fmt.Sprintf("reference %q not saved: %v", ref.Name, err))
		}
	}
	return warnings
}

// recalculateTotals re-derives the portfolio rollups from the debtor table
// after a batch lands.
func (s *ImportService) recalculateTotals(ctx context.Context, portfolioID string, userID string) error {
	debtors, err := s.debtorRepo.ListDebtorsByPortfolio(ctx, portfolioID)
	if err != nil {
		return err
	}
	var totalFaceValue int64
	for _, d := range debtors {
		totalFaceValue += d.OriginalBalance
	}
	return s.portfolioRepo.UpdatePortfolioTotals(ctx, portfolioID, len(debtors), totalFaceValue, userID, time.Now())
}

// ImportContacts appends phone and email contacts to existing accounts. Rows
// that match no account are errors; the pipeline never creates accounts.
func (s *ImportService) ImportContacts(ctx context.Context, req dto.ImportContactsRequest, userID string) (*dto.ContactImportResults, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if err := s.authSvc.AuthorizeUserAction(ctx, userID, portfolio.ClientID, domain.RoleCollector); err != nil {
		return nil, err
	}

	portfolioDebtors, err := s.debtorRepo.ListDebtorsByPortfolio(ctx, req.PortfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot portfolio %s: %w", req.PortfolioID, err)
	}
	snap := snapshotDebtors(portfolioDebtors)

	results := &dto.ContactImportResults{Errors: []string{}}
	for i, record := range req.Records {
		rowNum := i + 1
		row, _ := importing.CoerceRow(record, req.Mappings, "contacts")

		accountNumber := row.Str("accountNumber")
		ssn := row.Str("ssn")
		if accountNumber == "" && ssn == "" {
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: missing both accountNumber and ssn", rowNum))
			continue
		}
		existing := snap.match(accountNumber, ssn)
		if existing == nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: no matching account", rowNum))
			continue
		}
		results.Matched++

		added, err := s.appendContacts(ctx, existing.DebtorID, row, userID)
		if err != nil {
			results.Errors = append(results.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		results.Added += added
	}

	logger.Info("Contact import finished",
		slog.String("portfolio_id", req.PortfolioID),
		slog.Int("added", results.Added),
		slog.Int("matched", results.Matched),
		slog.Int("errors", len(results.Errors)),
	)
	return results, nil
}

// appendContacts adds the row's phone and email slots to an existing debtor.
// A new contact becomes primary only when the debtor has none of that type.
func (s *ImportService) appendContacts(ctx context.Context, debtorID string, row importing.MappedRow, userID string) (int, error) {
	existing, err := s.contactRepo.ListContactsByDebtor(ctx, debtorID)
	if err != nil {
		return 0, err
	}
	hasPhone := false
	hasEmail := false
	for _, c := range existing {
		switch c.Type {
		case domain.ContactPhone:
			hasPhone = true
		case domain.ContactEmail:
			hasEmail = true
		}
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	var contacts []domain.Contact
	for _, phone := range row.Phones() {
		contacts = append(contacts, domain.Contact{
			ContactID:   uuid.NewString(),
			DebtorID:    debtorID,
			Type:        domain.ContactPhone,
			Value:       phone.Number,
			Label:       phone.Label,
			IsPrimary:   !hasPhone,
			IsValid:     true,
			AuditFields: audit,
		})
		hasPhone = true
	}
	for _, email := range row.Emails() {
		contacts = append(contacts, domain.Contact{
			ContactID:   uuid.NewString(),
			DebtorID:    debtorID,
			Type:        domain.ContactEmail,
			Value:       email.Address,
			Label:       email.Label,
			IsPrimary:   !hasEmail,
			IsValid:     true,
			AuditFields: audit,
		})
		hasEmail = true
	}
	if len(contacts) == 0 {
		return 0, nil
	}
	if err := s.contactRepo.SaveContacts(ctx, contacts); err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// ssnLast4 returns the last four characters of an SSN, which works for both
// dashed and digits-only formats.
func ssnLast4(ssn string) string {
	if len(ssn) <= 4 {
		return ssn
	}
	return ssn[len(ssn)-4:]
}

// autoAccountNumber fabricates a placeholder account number for rows imported
// without one, keeping them distinguishable in listings.
func autoAccountNumber(now time.Time) string {
	return fmt.Sprintf("AUTO-%d-%03d", now.UnixMilli(), rand.Intn(1000))
}
