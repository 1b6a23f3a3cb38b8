package models

// EmploymentRecord represents an employment row.
type EmploymentRecord struct {
	EmploymentID    string `db:"employment_id"`
	DebtorID        string `db:"debtor_id"`
	EmployerName    string `db:"employer_name"`
	EmployerPhone   string `db:"employer_phone"`
	EmployerAddress string `db:"employer_address"`
	Position        string `db:"position"`
	Salary          int64  `db:"salary"`
	IsCurrent       bool   `db:"is_current"`
	AuditFields
}
