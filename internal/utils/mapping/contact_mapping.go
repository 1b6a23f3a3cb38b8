package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelContact converts a domain Contact to a model Contact
func ToModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID:   d.ContactID,
		DebtorID:    d.DebtorID,
		Type:        models.ContactType(d.Type),
		Value:       d.Value,
		Label:       d.Label,
		IsPrimary:   d.IsPrimary,
		IsValid:     d.IsValid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContact converts a model Contact to a domain Contact
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID:   m.ContactID,
		DebtorID:    m.DebtorID,
		Type:        domain.ContactType(m.Type),
		Value:       m.Value,
		Label:       m.Label,
		IsPrimary:   m.IsPrimary,
		IsValid:     m.IsValid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContactSlice converts a slice of model Contacts to a slice of domain Contacts
func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}
