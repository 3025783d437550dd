package integration

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Finance exposes the operations the purchasing module needs from the
// finance department: budget checks and payment authorization.
type Finance interface {
	CheckBudget(amount decimal.Decimal) bool
	AuthorizePayment(orderID int, amount decimal.Decimal) bool
	Available() decimal.Decimal
}

// FinanceSim is a simulated finance module holding a fixed budget that is
// consumed by authorized payments. It stands in for a real finance system.
type FinanceSim struct {
	mu     sync.Mutex
	budget decimal.Decimal
}

var _ Finance = (*FinanceSim)(nil)

// NewFinanceSim creates a finance simulation with the given budget
func NewFinanceSim(budget decimal.Decimal) *FinanceSim {
	return &FinanceSim{budget: budget}
}

// CheckBudget reports whether the remaining budget covers the amount
func (f *FinanceSim) CheckBudget(amount decimal.Decimal) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	ok := amount.LessThanOrEqual(f.budget)
	log.Debug().
		Str("amount", amount.StringFixed(2)).
		Str("available", f.budget.StringFixed(2)).
		Bool("approved", ok).
		Msg("finance: budget check")
	return ok
}

// AuthorizePayment consumes budget for an order. Returns false without
// consuming anything when the budget is insufficient.
func (f *FinanceSim) AuthorizePayment(orderID int, amount decimal.Decimal) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if amount.GreaterThan(f.budget) {
		log.Warn().Int("order_id", orderID).Str("amount", amount.StringFixed(2)).Msg("finance: payment denied")
		return false
	}
	f.budget = f.budget.Sub(amount)
	log.Info().Int("order_id", orderID).Str("amount", amount.StringFixed(2)).Msg("finance: payment authorized")
	return true
}

// Available returns the remaining budget
func (f *FinanceSim) Available() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.budget
}
