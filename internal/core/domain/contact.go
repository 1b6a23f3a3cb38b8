package domain

// ContactType distinguishes the two contact channels the platform stores.
type ContactType string

const (
	ContactPhone ContactType = "phone"
	ContactEmail ContactType = "email"
)

// Contact belongs to exactly one Debtor. At most one contact per type per
// debtor carries IsPrimary, enforced by creation order: the first non-empty
// contact of a type imported or added is primary.
type Contact struct {
	ContactID string      `json:"contactID"` // Primary Key (UUID)
	DebtorID  string      `json:"debtorID"`
	Type      ContactType `json:"type"`
	Value     string      `json:"value"`
	Label     string      `json:"label"`
	IsPrimary bool        `json:"isPrimary"`
	IsValid   bool        `json:"isValid"`
	AuditFields
}
