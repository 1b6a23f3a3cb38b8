package dto

import (
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// CreateDebtorRequest defines the data needed to create a debtor manually.
// Balances are integer minor units (cents), matching the storage convention.
type CreateDebtorRequest struct {
	PortfolioID     string `json:"portfolioID" binding:"required"`
	AccountNumber   string `json:"accountNumber"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	SSN             string `json:"ssn" binding:"omitempty,ssn"`
	DateOfBirth     string `json:"dateOfBirth"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	Zip             string `json:"zip"`
	OriginalCreditor string `json:"originalCreditor"`
	OriginalBalance int64  `json:"originalBalance" binding:"required,gt=0"`
	CurrentBalance  *int64 `json:"currentBalance"`
	FileNumber      string `json:"fileNumber"`
	Notes           string `json:"notes"`
}

// UpdateDebtorRequest defines the partial update a collector can apply.
// Pointers distinguish "not provided" from zero values.
type UpdateDebtorRequest struct {
	AssignedCollectorID *string    `json:"assignedCollectorID"`
	FirstName           *string    `json:"firstName"`
	LastName            *string    `json:"lastName"`
	Address             *string    `json:"address"`
	City                *string    `json:"city"`
	State               *string    `json:"state"`
	Zip                 *string    `json:"zip"`
	Status              *string    `json:"status" binding:"omitempty,oneof=open in_progress promise_to_pay payment_plan paid uncollectible disputed closed"`
	LastContactDate     *time.Time `json:"lastContactDate"`
	NextContactDate     *time.Time `json:"nextContactDate"`
	Notes               *string    `json:"notes"`
}

// DebtorResponse mirrors domain.Debtor for API consumers.
type DebtorResponse struct {
	DebtorID            string            `json:"debtorID"`
	ClientID            string            `json:"clientID"`
	PortfolioID         string            `json:"portfolioID"`
	AssignedCollectorID string            `json:"assignedCollectorID,omitempty"`
	LinkedDebtorID      string            `json:"linkedDebtorID,omitempty"`
	FileNumber          string            `json:"fileNumber"`
	AccountNumber       string            `json:"accountNumber"`
	FirstName           string            `json:"firstName"`
	LastName            string            `json:"lastName"`
	SSNLast4            string            `json:"ssnLast4"`
	Address             string            `json:"address"`
	City                string            `json:"city"`
	State               string            `json:"state"`
	Zip                 string            `json:"zip"`
	OriginalBalance     int64             `json:"originalBalance"`
	CurrentBalance      int64             `json:"currentBalance"`
	Status              string            `json:"status"`
	LastContactDate     *time.Time        `json:"lastContactDate"`
	NextContactDate     *time.Time        `json:"nextContactDate"`
	Notes               string            `json:"notes"`
	CustomFields        map[string]string `json:"customFields,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// DebtorDetail is a debtor plus its child entities, the shape collectors load
// when they open an account.
type DebtorDetail struct {
	Debtor     DebtorResponse            `json:"debtor"`
	Contacts   []domain.Contact          `json:"contacts"`
	Employment []domain.EmploymentRecord `json:"employment"`
	References []domain.Reference        `json:"references"`
}

// AddContactRequest appends a phone or email contact to a debtor.
type AddContactRequest struct {
	Type  string `json:"type" binding:"required,oneof=phone email"`
	Value string `json:"value" binding:"required"`
	Label string `json:"label"`
}

// ToDebtorResponse converts a domain.Debtor to its DTO. The full SSN never
// leaves the service layer.
func ToDebtorResponse(d *domain.Debtor) DebtorResponse {
	return DebtorResponse{
		DebtorID:            d.DebtorID,
		ClientID:            d.ClientID,
		PortfolioID:         d.PortfolioID,
		AssignedCollectorID: d.AssignedCollectorID,
		LinkedDebtorID:      d.LinkedDebtorID,
		FileNumber:          d.FileNumber,
		AccountNumber:       d.AccountNumber,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		SSNLast4:            d.SSNLast4,
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		Zip:                 d.Zip,
		OriginalBalance:     d.OriginalBalance,
		CurrentBalance:      d.CurrentBalance,
		Status:              string(d.Status),
		LastContactDate:     d.LastContactDate,
		NextContactDate:     d.NextContactDate,
		Notes:               d.Notes,
		CustomFields:        d.CustomFields,
		CreatedAt:           d.CreatedAt,
	}
}

// ToListDebtorResponse converts a slice of domain debtors to DTOs.
func ToListDebtorResponse(debtors []domain.Debtor) []DebtorResponse {
	res := make([]DebtorResponse, len(debtors))
	for i := range debtors {
		res[i] = ToDebtorResponse(&debtors[i])
	}
	return res
}

// ListDebtorsParams defines query parameters for listing debtors.
type ListDebtorsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListDebtorsResponse wraps the list of debtors.
type ListDebtorsResponse struct {
	Debtors []DebtorResponse `json:"debtors"`
}
