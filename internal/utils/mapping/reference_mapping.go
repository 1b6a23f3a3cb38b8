package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelReference converts a domain Reference to a model Reference
func ToModelReference(d domain.Reference) models.Reference {
	return models.Reference{
		ReferenceID:  d.ReferenceID,
		DebtorID:     d.DebtorID,
		Name:         d.Name,
		Relationship: d.Relationship,
		Phone:        d.Phone,
		Address:      d.Address,
		City:         d.City,
		State:        d.State,
		Zip:          d.Zip,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReference converts a model Reference to a domain Reference
func ToDomainReference(m models.Reference) domain.Reference {
	return domain.Reference{
		ReferenceID:  m.ReferenceID,
		DebtorID:     m.DebtorID,
		Name:         m.Name,
		Relationship: m.Relationship,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		Zip:          m.Zip,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReferenceSlice converts a slice of model References to domain References
func ToDomainReferenceSlice(ms []models.Reference) []domain.Reference {
	ds := make([]domain.Reference, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReference(m)
	}
	return ds
}
