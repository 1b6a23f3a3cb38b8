package models

import (
	"database/sql"
	"time"
)

// DebtorStatus mirrors domain.DebtorStatus at the storage layer.
type DebtorStatus string

// Debtor represents a debtor row. custom_fields is a jsonb column holding the
// free-form bucket of unmapped import columns.
type Debtor struct {
	DebtorID            string            `db:"debtor_id"`
	ClientID            string            `db:"client_id"`
	PortfolioID         string            `db:"portfolio_id"`
	AssignedCollectorID sql.NullString    `db:"assigned_collector_id"` // FK -> users, nullable
	LinkedDebtorID      sql.NullString    `db:"linked_debtor_id"`      // FK -> debtors, nullable
	FileNumber          string            `db:"file_number"`
	AccountNumber       string            `db:"account_number"`
	FirstName           string            `db:"first_name"`
	LastName            string            `db:"last_name"`
	SSN                 string            `db:"ssn"`
	SSNLast4            string            `db:"ssn_last4"`
	DateOfBirth         string            `db:"date_of_birth"`
	Address             string            `db:"address"`
	City                string            `db:"city"`
	State               string            `db:"state"`
	Zip                 string            `db:"zip"`
	OriginalCreditor    string            `db:"original_creditor"`
	OriginalBalance     int64             `db:"original_balance"`
	CurrentBalance      int64             `db:"current_balance"`
	Status              DebtorStatus      `db:"status"`
	ChargeOffDate       string            `db:"charge_off_date"`
	LastPaymentDate     string            `db:"last_payment_date"`
	LastContactDate     *time.Time        `db:"last_contact_date"`
	NextContactDate     *time.Time        `db:"next_contact_date"`
	Notes               string            `db:"notes"`
	CustomFields        map[string]string `db:"custom_fields"`
	AuditFields
}
