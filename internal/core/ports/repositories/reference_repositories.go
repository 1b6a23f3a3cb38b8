package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// ReferenceReader defines read operations for reference data.
type ReferenceReader interface {
	// ListReferencesByDebtor retrieves all references for a debtor.
	ListReferencesByDebtor(ctx context.Context, debtorID string) ([]domain.Reference, error)
}

// ReferenceWriter defines write operations for reference data.
type ReferenceWriter interface {
	// SaveReference persists a new reference.
	SaveReference(ctx context.Context, reference domain.Reference) error
}

// ReferenceRepositoryFacade combines all reference-related repository interfaces.
type ReferenceRepositoryFacade interface {
	ReferenceReader
	ReferenceWriter
}
