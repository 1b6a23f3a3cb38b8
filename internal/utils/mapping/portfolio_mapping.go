package mapping

import (
	"github.com/recovra/debt_collection_app/internal/core/domain"
	"github.com/recovra/debt_collection_app/internal/models"
)

// ToModelPortfolio converts a domain Portfolio to a model Portfolio
func ToModelPortfolio(d domain.Portfolio) models.Portfolio {
	return models.Portfolio{
		PortfolioID:      d.PortfolioID,
		ClientID:         d.ClientID,
		Name:             d.Name,
		OriginalCreditor: d.OriginalCreditor,
		PurchaseDate:     d.PurchaseDate,
		PurchaseCost:     d.PurchaseCost,
		TotalAccounts:    d.TotalAccounts,
		TotalFaceValue:   d.TotalFaceValue,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPortfolio converts a model Portfolio to a domain Portfolio
func ToDomainPortfolio(m models.Portfolio) domain.Portfolio {
	return domain.Portfolio{
		PortfolioID:      m.PortfolioID,
		ClientID:         m.ClientID,
		Name:             m.Name,
		OriginalCreditor: m.OriginalCreditor,
		PurchaseDate:     m.PurchaseDate,
		PurchaseCost:     m.PurchaseCost,
		TotalAccounts:    m.TotalAccounts,
		TotalFaceValue:   m.TotalFaceValue,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPortfolioSlice converts a slice of model Portfolios to domain Portfolios
func ToDomainPortfolioSlice(ms []models.Portfolio) []domain.Portfolio {
	ds := make([]domain.Portfolio, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPortfolio(m)
	}
	return ds
}
