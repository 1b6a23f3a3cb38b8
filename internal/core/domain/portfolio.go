package domain

import "time"

// Portfolio is a purchased batch of debt accounts from one creditor.
// TotalAccounts and TotalFaceValue are derived rollups: they are recomputed
// from the debtor table after every import (and on demand), never maintained
// as running counters.
type Portfolio struct {
	PortfolioID    string     `json:"portfolioID"` // Primary Key (UUID)
	ClientID       string     `json:"clientID"`    // FK -> clients.client_id
	Name           string     `json:"name"`
	OriginalCreditor string   `json:"originalCreditor"`
	PurchaseDate   *time.Time `json:"purchaseDate"`
	PurchaseCost   int64      `json:"purchaseCost"`   // minor units (cents)
	TotalAccounts  int        `json:"totalAccounts"`  // derived
	TotalFaceValue int64      `json:"totalFaceValue"` // derived, minor units
	IsActive       bool       `json:"isActive"`
	AuditFields
}
