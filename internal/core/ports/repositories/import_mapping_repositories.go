package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// ImportMappingReader defines read operations for saved import mappings.
type ImportMappingReader interface {
	// FindImportMappingByID retrieves a saved mapping by its unique identifier.
	FindImportMappingByID(ctx context.Context, mappingID string) (*domain.ImportMapping, error)

	// ListImportMappingsByClient retrieves all saved mappings for a client.
	ListImportMappingsByClient(ctx context.Context, clientID string) ([]domain.ImportMapping, error)
}

// ImportMappingWriter defines write operations for saved import mappings.
type ImportMappingWriter interface {
	// SaveImportMapping persists a new mapping.
	SaveImportMapping(ctx context.Context, mapping domain.ImportMapping) error

	// UpdateImportMapping overwrites an existing mapping's name, columns and default flag.
	UpdateImportMapping(ctx context.Context, mapping domain.ImportMapping) error

	// DeleteImportMapping removes a saved mapping.
	DeleteImportMapping(ctx context.Context, mappingID string) error

	// ClearDefaultMapping unsets is_default on every mapping of a client,
	// called before promoting a new default.
	ClearDefaultMapping(ctx context.Context, clientID string) error
}

// ImportMappingRepositoryFacade combines all import-mapping repository interfaces.
type ImportMappingRepositoryFacade interface {
	ImportMappingReader
	ImportMappingWriter
}
