package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelEmployment converts a domain EmploymentRecord to a model EmploymentRecord
func ToModelEmployment(d domain.EmploymentRecord) models.EmploymentRecord {
	return models.EmploymentRecord{
		EmploymentID:    d.EmploymentID,
		DebtorID:        d.DebtorID,
		EmployerName:    d.EmployerName,
		EmployerPhone:   d.EmployerPhone,
		EmployerAddress: d.EmployerAddress,
		Position:        d.Position,
		Salary:          d.Salary,
		IsCurrent:       d.IsCurrent,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployment converts a model EmploymentRecord to a domain EmploymentRecord
func ToDomainEmployment(m models.EmploymentRecord) domain.EmploymentRecord {
	return domain.EmploymentRecord{
		EmploymentID:    m.EmploymentID,
		DebtorID:        m.DebtorID,
		EmployerName:    m.EmployerName,
		EmployerPhone:   m.EmployerPhone,
		EmployerAddress: m.EmployerAddress,
		Position:        m.Position,
		Salary:          m.Salary,
		IsCurrent:       m.IsCurrent,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmploymentSlice converts a slice of model EmploymentRecords to domain records
func ToDomainEmploymentSlice(ms []models.EmploymentRecord) []domain.EmploymentRecord {
	ds := make([]domain.EmploymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployment(m)
	}
	return ds
}
