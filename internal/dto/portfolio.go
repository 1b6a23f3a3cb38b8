package dto

import (
	"time"

	"github.com/recovra/debt_collection_app/internal/core/domain"
)

// CreatePortfolioRequest defines the data needed to create a portfolio.
// PurchaseCost is integer minor units (cents).
type CreatePortfolioRequest struct {
	Name             string     `json:"name" binding:"required"`
	OriginalCreditor string     `json:"originalCreditor"`
	PurchaseDate     *time.Time `json:"purchaseDate"`
	PurchaseCost     int64      `json:"purchaseCost" binding:"omitempty,gte=0"`
}

// PortfolioResponse mirrors domain.Portfolio.
type PortfolioResponse struct {
	PortfolioID      string     `json:"portfolioID"`
	ClientID         string     `json:"clientID"`
	Name             string     `json:"name"`
	OriginalCreditor string     `json:"originalCreditor"`
	PurchaseDate     *time.Time `json:"purchaseDate"`
	PurchaseCost     int64      `json:"purchaseCost"`
	TotalAccounts    int        `json:"totalAccounts"`
	TotalFaceValue   int64      `json:"totalFaceValue"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// ToPortfolioResponse converts a domain.Portfolio to its DTO.
func ToPortfolioResponse(p *domain.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		PortfolioID:      p.PortfolioID,
		ClientID:         p.ClientID,
		Name:             p.Name,
		OriginalCreditor: p.OriginalCreditor,
		PurchaseDate:     p.PurchaseDate,
		PurchaseCost:     p.PurchaseCost,
		TotalAccounts:    p.TotalAccounts,
		TotalFaceValue:   p.TotalFaceValue,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
	}
}

// ToListPortfolioResponse converts a slice of domain portfolios to DTOs.
func ToListPortfolioResponse(portfolios []domain.Portfolio) []PortfolioResponse {
	res := make([]PortfolioResponse, len(portfolios))
	for i := range portfolios {
		res[i] = ToPortfolioResponse(&portfolios[i])
	}
	return res
}
