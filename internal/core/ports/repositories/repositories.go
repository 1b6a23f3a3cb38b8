package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClientRepo        ClientRepositoryFacade
	PortfolioRepo     PortfolioRepositoryFacade
	DebtorRepo        DebtorRepositoryFacade
	ContactRepo       ContactRepositoryFacade
	EmploymentRepo    EmploymentRepositoryFacade
	ReferenceRepo     ReferenceRepositoryFacade
	ImportMappingRepo ImportMappingRepositoryFacade
	UserRepo          UserRepositoryFacade
}
