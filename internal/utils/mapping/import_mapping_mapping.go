package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelImportMapping converts a domain ImportMapping to a model ImportMapping
func ToModelImportMapping(d domain.ImportMapping) models.ImportMapping {
	return models.ImportMapping{
		MappingID:   d.MappingID,
		ClientID:    d.ClientID,
		Name:        d.Name,
		Mapping:     d.Mapping,
		IsDefault:   d.IsDefault,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainImportMapping converts a model ImportMapping to a domain ImportMapping
func ToDomainImportMapping(m models.ImportMapping) domain.ImportMapping {
	return domain.ImportMapping{
		MappingID:   m.MappingID,
		ClientID:    m.ClientID,
		Name:        m.Name,
		Mapping:     m.Mapping,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainImportMappingSlice converts a slice of model ImportMappings to domain ImportMappings
func ToDomainImportMappingSlice(ms []models.ImportMapping) []domain.ImportMapping {
	ds := make([]domain.ImportMapping, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImportMapping(m)
	}
	return ds
}
