package models

import "time"

// Portfolio represents a portfolio row. total_accounts and total_face_value
// are recomputed rollups, not running counters.
type Portfolio struct {
	PortfolioID      string     `db:"portfolio_id"`
	ClientID         string     `db:"client_id"`
	Name             string     `db:"name"`
	OriginalCreditor string     `db:"original_creditor"`
	PurchaseDate     *time.Time `db:"purchase_date"`
	PurchaseCost     int64      `db:"purchase_cost"`
	TotalAccounts    int        `db:"total_accounts"`
	TotalFaceValue   int64      `db:"total_face_value"`
	IsActive         bool       `db:"is_active"`
	AuditFields
}
