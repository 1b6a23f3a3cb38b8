package services

import (
	portsrepo "github.com/recovra/debt_collection_app/internal/core/ports/repositories"
	portssvc "github.com/recovra/debt_collection_app/internal/core/ports/services"
	"github.com/recovra/debt_collection_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repository dependencies.
// The client service doubles as the authorizer the other services consult.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	clientSvc := NewClientService(repos.ClientRepo)
	portfolioSvc := NewPortfolioService(repos.PortfolioRepo, repos.DebtorRepo, clientSvc)
	debtorSvc := NewDebtorService(repos.DebtorRepo, repos.ContactRepo, repos.EmploymentRepo, repos.ReferenceRepo, repos.PortfolioRepo, clientSvc)
	importSvc := NewImportService(repos.PortfolioRepo, repos.DebtorRepo, repos.ContactRepo, repos.EmploymentRepo, repos.ReferenceRepo, clientSvc)
	importMappingSvc := NewImportMappingService(repos.ImportMappingRepo, clientSvc)
	userSvc := NewUserService(repos.UserRepo)
	tokenSvc := NewTokenService(cfg, userSvc)
	googleOAuthSvc := NewGoogleOAuthHandlerService(cfg)

	return &portssvc.ServiceContainer{
		Client:             clientSvc,
		Portfolio:          portfolioSvc,
		Debtor:             debtorSvc,
		Import:             importSvc,
		ImportMapping:      importMappingSvc,
		User:               userSvc,
		TokenService:       tokenSvc,
		GoogleOAuthHandler: googleOAuthSvc,
	}
}
