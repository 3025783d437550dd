package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/purchasing/store"
)

// APIStatus reports that the backend is reachable
func (h *Handler) APIStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "online",
		"message": "Backend conectado",
	})
}

// APISuppliers returns all suppliers as JSON
func (h *Handler) APISuppliers(c *fiber.Ctx) error {
	return c.JSON(h.Suppliers.List())
}

// APIOrders returns all purchase orders as JSON
func (h *Handler) APIOrders(c *fiber.Ctx) error {
	return c.JSON(h.Orders.List())
}

// APIInventory returns the simulated stock contents as JSON
func (h *Handler) APIInventory(c *fiber.Ctx) error {
	return c.JSON(h.Inventory.Items())
}

// APIFinance returns the simulated finance state as JSON
func (h *Handler) APIFinance(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"available_budget": h.Finance.Available(),
	})
}

// APINotifications returns the active notification stack as JSON
func (h *Handler) APINotifications(c *fiber.Ctx) error {
	return c.JSON(h.Notify.Active())
}

// GetOpLogs returns recent store operations for debugging
func (h *Handler) GetOpLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	ops := store.Ops.GetRecentOps(limit)

	return c.JSON(fiber.Map{
		"total": len(ops),
		"ops":   ops,
	})
}

// ClearOpLogs clears the store operation log
func (h *Handler) ClearOpLogs(c *fiber.Ctx) error {
	store.Ops.Clear()
	return c.JSON(fiber.Map{
		"message": "Operation logs cleared",
	})
}
