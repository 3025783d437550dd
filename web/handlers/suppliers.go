package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/purchasing/notify"
	"github.com/purchasing/web/views"
)

// SupplierList displays the supplier table with the active filters
func (h *Handler) SupplierList(c *fiber.Ctx) error {
	return h.renderSupplierList(c, fiber.StatusOK, nil)
}

func (h *Handler) renderSupplierList(c *fiber.Ctx, status int, form fiber.Map) error {
	filter := views.SupplierFilter{
		Query:   c.Query("q"),
		Product: c.Query("product"),
	}

	suppliers := h.Suppliers.List()
	rows := views.SupplierRows(suppliers, filter)

	return c.Status(status).Render("pages/suppliers/list", fiber.Map{
		"Title":         "Gestão de Fornecedores",
		"Active":        "suppliers",
		"Rows":          rows,
		"EmptyMessage":  views.SupplierEmptyMessage(!filter.IsZero()),
		"Filter":        filter,
		"Products":      h.Suppliers.Products(),
		"Form":          form,
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}

// SupplierCreate creates a new supplier from the registration form
func (h *Handler) SupplierCreate(c *fiber.Ctx) error {
	name := c.FormValue("name")
	address := c.FormValue("address")
	taxID := c.FormValue("tax_id")
	product := c.FormValue("product")
	priceStr := c.FormValue("price")

	form := fiber.Map{
		"Name":    name,
		"Address": address,
		"TaxID":   taxID,
		"Product": product,
		"Price":   priceStr,
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		return h.renderSupplierList(c, fiber.StatusBadRequest, form)
	}

	supplier, err := h.Suppliers.Add(name, address, taxID, product, price)
	if err != nil {
		h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		return h.renderSupplierList(c, fiber.StatusBadRequest, form)
	}

	h.Notify.Push(fmt.Sprintf("Fornecedor %q adicionado com sucesso!", supplier.Name), notify.Success)
	return c.Redirect("/suppliers", fiber.StatusSeeOther)
}

// SupplierConfirmDelete shows the removal confirmation page. Removal only
// happens when the confirmation form is submitted; navigating away declines
// it silently.
func (h *Handler) SupplierConfirmDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Identificador de fornecedor inválido")
	}

	supplier, ok := h.Suppliers.FindByID(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Fornecedor não encontrado")
	}

	return c.Render("pages/suppliers/confirm_delete", fiber.Map{
		"Title":         "Remover Fornecedor",
		"Active":        "suppliers",
		"Supplier":      supplier,
		"Price":         views.FormatCurrency(supplier.Price),
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}

// SupplierDelete removes a supplier after an explicit confirmation. Without
// confirm=yes nothing changes and no error is surfaced.
func (h *Handler) SupplierDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Identificador de fornecedor inválido")
	}

	if c.FormValue("confirm") != "yes" {
		return c.Redirect("/suppliers", fiber.StatusSeeOther)
	}

	if h.Suppliers.Remove(id) {
		h.Notify.Push("Fornecedor removido com sucesso!", notify.Success)
	}
	return c.Redirect("/suppliers", fiber.StatusSeeOther)
}

// SupplierEdit is not implemented yet; it renders the under construction
// page instead of a form.
func (h *Handler) SupplierEdit(c *fiber.Ctx) error {
	return c.Render("pages/under_construction", fiber.Map{
		"Title":         "Edição de Fornecedor",
		"Active":        "suppliers",
		"Module":        "Edição de fornecedor",
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}
