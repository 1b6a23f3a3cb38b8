package models

// Reference represents a personal reference row.
type Reference struct {
	ReferenceID  string `db:"reference_id"`
	DebtorID     string `db:"debtor_id"`
	Name         string `db:"name"`
	Relationship string `db:"relationship"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	City         string `db:"city"`
	State        string `db:"state"`
	Zip          string `db:"zip"`
	Notes        string `db:"notes"`
	AuditFields
}
