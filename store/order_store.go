package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purchasing/integration"
	"github.com/purchasing/models"
)

// OrderStore owns the purchase order list and its id counter. Suppliers are
// resolved through the supplier store at creation time only: the stored
// supplier name is a snapshot and the supplier reference may dangle after a
// later removal.
type OrderStore struct {
	mu        sync.Mutex
	orders    []models.PurchaseOrder
	nextID    int
	suppliers *SupplierStore
	finance   integration.Finance
}

// NewOrderStore creates an empty order store. The finance module may be nil,
// in which case no budget gate is applied.
func NewOrderStore(suppliers *SupplierStore, finance integration.Finance) *OrderStore {
	return &OrderStore{nextID: 1, suppliers: suppliers, finance: finance}
}

// Add validates and creates a purchase order. The total value is computed
// once from quantity and unit price; the status starts as PENDING. A failed
// add leaves the list and the counter untouched.
func (s *OrderStore) Add(supplierID, itemID, quantity int, unitPrice decimal.Decimal) (*models.PurchaseOrder, error) {
	start := time.Now()

	if err := validateOrder(supplierID, itemID, quantity, unitPrice); err != nil {
		Ops.Log("order.add", "", time.Since(start), err)
		return nil, err
	}

	supplier, ok := s.suppliers.FindByID(supplierID)
	if !ok {
		err := &ReferenceError{Entity: "supplier", ID: supplierID}
		Ops.Log("order.add", "", time.Since(start), err)
		return nil, err
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	// Budget verification runs on its own goroutine, the way the finance
	// module is consulted by the upstream system. This is a fast-path
	// rejection only; the budget is actually consumed at commit time.
	if s.finance != nil {
		approved := make(chan bool, 1)
		go func() {
			approved <- s.finance.CheckBudget(total)
		}()
		if !<-approved {
			err := &ValidationError{Field: "total_value", Reason: "exceeds available budget"}
			Ops.Log("order.add", total.StringFixed(2), time.Since(start), err)
			return nil, err
		}
	}

	s.mu.Lock()
	// Authorization consumes the budget under the store lock, so a
	// concurrent add cannot spend the same funds between the check and the
	// commit. A denied authorization leaves the list and the counter
	// untouched.
	if s.finance != nil && !s.finance.AuthorizePayment(s.nextID, total) {
		s.mu.Unlock()
		err := &ValidationError{Field: "total_value", Reason: "exceeds available budget"}
		Ops.Log("order.add", total.StringFixed(2), time.Since(start), err)
		return nil, err
	}
	order := models.PurchaseOrder{
		ID:           s.nextID,
		ItemID:       itemID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalValue:   total,
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Status:       models.OrderPending,
		Date:         time.Now(),
	}
	s.nextID++
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	Ops.Log("order.add", fmt.Sprintf("#%d total %s", order.ID, total.StringFixed(2)), time.Since(start), nil)
	return &order, nil
}

func validateOrder(supplierID, itemID, quantity int, unitPrice decimal.Decimal) error {
	switch {
	case supplierID <= 0:
		return &ValidationError{Field: "supplier_id", Reason: "must be a positive number"}
	case itemID <= 0:
		return &ValidationError{Field: "item_id", Reason: "must be a positive number"}
	case quantity <= 0:
		return &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	case !unitPrice.IsPositive():
		return &ValidationError{Field: "unit_price", Reason: "must be a positive number"}
	}
	return nil
}

// FindByID returns the order with the given id
func (s *OrderStore) FindByID(id int) (*models.PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, true
		}
	}
	return nil, false
}

// List returns all orders in insertion order
func (s *OrderStore) List() []models.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.PurchaseOrder, len(s.orders))
	copy(result, s.orders)
	return result
}

// Count returns the number of orders
func (s *OrderStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// OrderStats summarizes the order book for the dashboard
type OrderStats struct {
	TotalOrders int             `json:"total_orders"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Pending     int             `json:"pending"`
}

// Stats returns order book totals
func (s *OrderStore) Stats() OrderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := OrderStats{TotalOrders: len(s.orders), TotalValue: decimal.Zero}
	for _, order := range s.orders {
		stats.TotalValue = stats.TotalValue.Add(order.TotalValue)
		if order.Status == models.OrderPending {
			stats.Pending++
		}
	}
	return stats
}
