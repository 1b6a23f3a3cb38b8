package dto

import (
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// SaveImportMappingRequest creates or replaces a named mapping preset.
type SaveImportMappingRequest struct {
	Name      string            `json:"name" binding:"required"`
	Mapping   map[string]string `json:"mapping" binding:"required"`
	IsDefault bool              `json:"isDefault"`
}

// ImportMappingResponse mirrors domain.ImportMapping.
type ImportMappingResponse struct {
	MappingID string            `json:"mappingID"`
	ClientID  string            `json:"clientID"`
	Name      string            `json:"name"`
	Mapping   map[string]string `json:"mapping"`
	IsDefault bool              `json:"isDefault"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToImportMappingResponse converts a domain.ImportMapping to its DTO.
func ToImportMappingResponse(m *domain.ImportMapping) ImportMappingResponse {
	return ImportMappingResponse{
		MappingID: m.MappingID,
		ClientID:  m.ClientID,
		Name:      m.Name,
		Mapping:   m.Mapping,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

// ToListImportMappingResponse converts a slice of domain mappings to DTOs.
func ToListImportMappingResponse(mappings []domain.ImportMapping) []ImportMappingResponse {
	res := make([]ImportMappingResponse, len(mappings))
	for i := range mappings {
		res[i] = ToImportMappingResponse(&mappings[i])
	}
	return res
}

// PreviewMappingRequest asks for the editable mapping of a header row.
// ImportType selects the target field set ("accounts" or "contacts");
// CurrentMapping carries the user's in-progress column choices, and
// MappingID optionally merges a saved preset on top of them.
type PreviewMappingRequest struct {
	Headers        []string          `json:"headers" binding:"required"`
	ImportType     string            `json:"importType" binding:"required,oneof=accounts contacts"`
	CurrentMapping map[string]string `json:"currentMapping"`
	MappingID      string            `json:"mappingID"`
}

// PreviewMappingResponse returns the per-column mapping plus the full list of
// selectable target fields for the chosen import type.
type PreviewMappingResponse struct {
	Mapping      map[string]string `json:"mapping"`
	TargetFields []string          `json:"targetFields"`
}
