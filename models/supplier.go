package models

import "github.com/shopspring/decimal"

// Supplier represents a registered vendor with a single product/price pair
type Supplier struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	TaxID   string          `json:"tax_id"`
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
}
