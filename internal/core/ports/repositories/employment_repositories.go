package repositories

import (
	"context"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// EmploymentReader defines read operations for employment data.
type EmploymentReader interface {
	// ListEmploymentByDebtor retrieves all employment records for a debtor.
	ListEmploymentByDebtor(ctx context.Context, debtorID string) ([]domain.EmploymentRecord, error)
}

// EmploymentWriter defines write operations for employment data.
type EmploymentWriter interface {
	// SaveEmployment persists a new employment record.
	SaveEmployment(ctx context.Context, record domain.EmploymentRecord) error
}

// EmploymentRepositoryFacade combines all employment-related repository interfaces.
type EmploymentRepositoryFacade interface {
	EmploymentReader
	EmploymentWriter
}
