package domain

import "time"

// DebtorStatus tracks where an account sits in the collection workflow.
type DebtorStatus string

const (
	StatusOpen          DebtorStatus = "open"
	StatusInProgress    DebtorStatus = "in_progress"
	StatusPromiseToPay  DebtorStatus = "promise_to_pay"
	StatusPaymentPlan   DebtorStatus = "payment_plan"
	StatusPaid          DebtorStatus = "paid"
	StatusUncollectible DebtorStatus = "uncollectible"
	StatusDisputed      DebtorStatus = "disputed"
	StatusClosed        DebtorStatus = "closed"
)

// IsValidStatus reports whether s is one of the workflow statuses.
func IsValidStatus(s DebtorStatus) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPromiseToPay, StatusPaymentPlan,
		StatusPaid, StatusUncollectible, StatusDisputed, StatusClosed:
		return true
	}
	return false
}

// Debtor is a single collectible debt record tied to one person and one
// portfolio. AccountNumber is the source system's identifier and is only
// meaningful within a portfolio; FileNumber is the sequential display id
// assigned at creation. LinkedDebtorID points at the same natural person's
// account in a different portfolio of the same client (matched by SSN) and is
// a one-way informational pointer, not a foreign-key cycle.
type Debtor struct {
	DebtorID            string            `json:"debtorID"` // Primary Key (UUID)
	ClientID            string            `json:"clientID"`
	PortfolioID         string            `json:"portfolioID"`
	AssignedCollectorID string            `json:"assignedCollectorID"` // optional FK -> users
	LinkedDebtorID      string            `json:"linkedDebtorID"`      // optional, cross-portfolio link
	FileNumber          string            `json:"fileNumber"`          // e.g. FN-2026-000001
	AccountNumber       string            `json:"accountNumber"`
	FirstName           string            `json:"firstName"`
	LastName            string            `json:"lastName"`
	SSN                 string            `json:"ssn"`
	SSNLast4            string            `json:"ssnLast4"`
	DateOfBirth         string            `json:"dateOfBirth"`
	Address             string            `json:"address"`
	City                string            `json:"city"`
	State               string            `json:"state"`
	Zip                 string            `json:"zip"`
	OriginalCreditor    string            `json:"originalCreditor"`
	OriginalBalance     int64             `json:"originalBalance"` // minor units (cents)
	CurrentBalance      int64             `json:"currentBalance"`  // minor units, maintained by the payment path
	Status              DebtorStatus      `json:"status"`
	ChargeOffDate       string            `json:"chargeOffDate"`
	LastPaymentDate     string            `json:"lastPaymentDate"`
	LastContactDate     *time.Time        `json:"lastContactDate"`
	NextContactDate     *time.Time        `json:"nextContactDate"`
	Notes               string            `json:"notes"`
	CustomFields        map[string]string `json:"customFields"` // unmapped source columns, keyed by chosen label
	AuditFields
}

// DebtorPatch describes a partial update to a Debtor. Nil fields are left
// untouched; this is the shape the identity resolver's update-in-place path
// and the manual edit endpoint both produce.
type DebtorPatch struct {
	AssignedCollectorID *string
	AccountNumber       *string
	FirstName           *string
	LastName            *string
	SSN                 *string
	SSNLast4            *string
	DateOfBirth         *string
	Address             *string
	City                *string
	State               *string
	Zip                 *string
	OriginalCreditor    *string
	OriginalBalance     *int64
	CurrentBalance      *int64
	Status              *DebtorStatus
	ChargeOffDate       *string
	LastPaymentDate     *string
	LastContactDate     *time.Time
	NextContactDate     *time.Time
	Notes               *string
	CustomFields        map[string]string // merged into the existing bucket when non-nil
}

// IsEmpty reports whether the patch would change nothing.
func (p DebtorPatch) IsEmpty() bool {
	return p.AssignedCollectorID == nil && p.AccountNumber == nil && p.FirstName == nil &&
		p.LastName == nil && p.SSN == nil && p.SSNLast4 == nil && p.DateOfBirth == nil &&
		p.Address == nil && p.City == nil && p.State == nil && p.Zip == nil &&
		p.OriginalCreditor == nil && p.OriginalBalance == nil && p.CurrentBalance == nil &&
		p.Status == nil && p.ChargeOffDate == nil && p.LastPaymentDate == nil &&
		p.LastContactDate == nil && p.NextContactDate == nil && p.Notes == nil &&
		len(p.CustomFields) == 0
}
