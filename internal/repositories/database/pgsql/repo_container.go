package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	portfolioRepo := newPgxPortfolioRepository(dbPool)
	debtorRepo := newPgxDebtorRepository(dbPool)
	contactRepo := newPgxContactRepository(dbPool)
	employmentRepo := newPgxEmploymentRepository(dbPool)
	referenceRepo := newPgxReferenceRepository(dbPool)
	importMappingRepo := newPgxImportMappingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:        clientRepo,
		PortfolioRepo:     portfolioRepo,
		DebtorRepo:        debtorRepo,
		ContactRepo:       contactRepo,
		EmploymentRepo:    employmentRepo,
		ReferenceRepo:     referenceRepo,
		ImportMappingRepo: importMappingRepo,
		UserRepo:          userRepo,
	}
}
