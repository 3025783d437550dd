package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/purchasing/web/views"
)

// HomePage handles the dashboard page
func (h *Handler) HomePage(c *fiber.Ctx) error {
	stats := h.Orders.Stats()

	// Show the most recent orders first
	orders := h.Orders.List()
	if len(orders) > 5 {
		orders = orders[len(orders)-5:]
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	return c.Render("pages/home", fiber.Map{
		"Title":          "Gestão de Compras",
		"Active":         "home",
		"TotalSuppliers": h.Suppliers.Count(),
		"TotalOrders":    stats.TotalOrders,
		"PendingOrders":  stats.Pending,
		"TotalValue":     views.FormatCurrency(stats.TotalValue),
		"Budget":         views.FormatCurrency(h.Finance.Available()),
		"RecentOrders":   views.OrderRows(orders, views.OrderFilter{}),
		"Notifications":  h.Notify.Active(),
		"StoreOps":       c.Locals("StoreOps"),
		"TotalStoreOps":  c.Locals("TotalStoreOps"),
	}, "layouts/base")
}
