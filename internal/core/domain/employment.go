package domain

// EmploymentRecord belongs to one Debtor. The importer creates at most one
// per debtor and always marks it current; historical employment only enters
// the system through collector edits.
type EmploymentRecord struct {
	EmploymentID    string `json:"employmentID"` // Primary Key (UUID)
	DebtorID        string `json:"debtorID"`
	EmployerName    string `json:"employerName"` // required to create
	EmployerPhone   string `json:"employerPhone"`
	EmployerAddress string `json:"employerAddress"`
	Position        string `json:"position"`
	Salary          int64  `json:"salary"` // minor units (cents)
	IsCurrent       bool   `json:"isCurrent"`
	AuditFields
}
