package domain

// Reference is a personal reference attached to a Debtor, used by collectors
// for skip tracing. Name is required; every other field is optional.
type Reference struct {
	ReferenceID  string `json:"referenceID"` // Primary Key (UUID)
	DebtorID     string `json:"debtorID"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Notes        string `json:"notes"`
	AuditFields
}
