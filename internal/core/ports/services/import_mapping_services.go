package services

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/dto"
)

// ImportMappingSvcFacade manages saved column-mapping presets and the
// header-row preview that seeds the mapping editor.
type ImportMappingSvcFacade interface {
	CreateImportMapping(ctx context.Context, clientID string, req dto.SaveImportMappingRequest, userID string) (*domain.ImportMapping, error)
	ListImportMappings(ctx context.Context, clientID string, userID string) ([]domain.ImportMapping, error)
	UpdateImportMapping(ctx context.Context, clientID, mappingID string, req dto.SaveImportMappingRequest, userID string) (*domain.ImportMapping, error)
	DeleteImportMapping(ctx context.Context, clientID, mappingID string, userID string) error

	// PreviewMapping builds the editable mapping for a header row: every
	// column defaults to "skip", then the saved mapping (when given) is
	// partially merged on top for columns present in both.
	PreviewMapping(ctx context.Context, clientID string, req dto.PreviewMappingRequest, userID string) (*dto.PreviewMappingResponse, error)
}
