package models

// ContactType mirrors domain.ContactType at the storage layer.
type ContactType string

// Contact represents a contact row.
type Contact struct {
	ContactID string      `db:"contact_id"`
	DebtorID  string      `db:"debtor_id"`
	Type      ContactType `db:"type"`
	Value     string      `db:"value"`
	Label     string      `db:"label"`
	IsPrimary bool        `db:"is_primary"`
	IsValid   bool        `db:"is_valid"`
	AuditFields
}
