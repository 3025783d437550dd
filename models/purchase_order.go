package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus type for purchase order status
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderRejected  OrderStatus = "REJECTED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
)

// BadgeClass returns the CSS badge class used to render the status
func (s OrderStatus) BadgeClass() string {
	switch s {
	case OrderPending:
		return "badge-warning"
	case OrderApproved, OrderDelivered:
		return "badge-success"
	case OrderRejected:
		return "badge-danger"
	default:
		return "badge-info"
	}
}

// PurchaseOrder represents an order of material placed with one supplier.
// SupplierName is copied from the supplier at creation time and is not
// updated if the supplier is later renamed or removed. TotalValue is
// computed once at creation and stored.
type PurchaseOrder struct {
	ID           int             `json:"id"`
	ItemID       int             `json:"item_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalValue   decimal.Decimal `json:"total_value"`
	SupplierID   int             `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Status       OrderStatus     `json:"status"`
	Date         time.Time       `json:"date"`
}
