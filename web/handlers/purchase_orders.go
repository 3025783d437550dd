package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/purchasing/notify"
	"github.com/purchasing/store"
	"github.com/purchasing/web/views"
)

// OrderList displays the purchase order table with the active filters
func (h *Handler) OrderList(c *fiber.Ctx) error {
	return h.renderOrderList(c, fiber.StatusOK, nil)
}

func (h *Handler) renderOrderList(c *fiber.Ctx, status int, form fiber.Map) error {
	filter := views.OrderFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	}

	orders := h.Orders.List()
	rows := views.OrderRows(orders, filter)

	return c.Status(status).Render("pages/purchase_orders/list", fiber.Map{
		"Title":         "Ordens de Compra",
		"Active":        "purchase-orders",
		"Rows":          rows,
		"EmptyMessage":  views.OrderEmptyMessage(!filter.IsZero()),
		"Filter":        filter,
		"Statuses":      views.OrderStatuses(),
		"Suppliers":     views.SupplierOptions(h.Suppliers.List()),
		"Form":          form,
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}

// OrderCreate creates a purchase order from the order form
func (h *Handler) OrderCreate(c *fiber.Ctx) error {
	supplierIDStr := c.FormValue("supplier_id")
	itemIDStr := c.FormValue("item_id")
	quantityStr := c.FormValue("quantity")
	unitPriceStr := c.FormValue("unit_price")

	form := fiber.Map{
		"SupplierID": supplierIDStr,
		"ItemID":     itemIDStr,
		"Quantity":   quantityStr,
		"UnitPrice":  unitPriceStr,
	}

	supplierID, err1 := strconv.Atoi(supplierIDStr)
	itemID, err2 := strconv.Atoi(itemIDStr)
	quantity, err3 := strconv.Atoi(quantityStr)
	unitPrice, err4 := decimal.NewFromString(unitPriceStr)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		return h.renderOrderList(c, fiber.StatusBadRequest, form)
	}

	order, err := h.Orders.Add(supplierID, itemID, quantity, unitPrice)
	if err != nil {
		var refErr *store.ReferenceError
		if errors.As(err, &refErr) {
			h.Notify.Push("Fornecedor não encontrado", notify.Danger)
		} else {
			h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		}
		return h.renderOrderList(c, fiber.StatusBadRequest, form)
	}

	// Tell the stock module material is on the way
	h.Inventory.RegisterPurchase(order.ItemID, order.Quantity, order.ID)

	h.Notify.Push("Ordem de compra criada com sucesso!", notify.Success)
	return c.Redirect("/purchase-orders", fiber.StatusSeeOther)
}

// OrderView displays a single purchase order
func (h *Handler) OrderView(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Identificador de ordem inválido")
	}

	order, ok := h.Orders.FindByID(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Ordem de compra não encontrada")
	}

	return c.Render("pages/purchase_orders/view", fiber.Map{
		"Title":         "Detalhes da Ordem",
		"Active":        "purchase-orders",
		"Order":         order,
		"UnitPrice":     views.FormatCurrency(order.UnitPrice),
		"TotalValue":    views.FormatCurrency(order.TotalValue),
		"Date":          views.FormatDate(order.Date),
		"BadgeClass":    order.Status.BadgeClass(),
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}
