package handlers

import (
	"github.com/purchasing/integration"
	"github.com/purchasing/notify"
	"github.com/purchasing/store"
)

// Handler bundles the stores and simulated modules behind the web routes
type Handler struct {
	Suppliers  *store.SupplierStore
	Orders     *store.OrderStore
	Notify     *notify.Center
	Finance    integration.Finance
	Inventory  integration.Inventory
	Production integration.Production
}

// New creates the handler set
func New(
	suppliers *store.SupplierStore,
	orders *store.OrderStore,
	center *notify.Center,
	finance integration.Finance,
	inventory integration.Inventory,
	production integration.Production,
) *Handler {
	return &Handler{
		Suppliers:  suppliers,
		Orders:     orders,
		Notify:     center,
		Finance:    finance,
		Inventory:  inventory,
		Production: production,
	}
}
