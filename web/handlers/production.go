package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/purchasing/notify"
)

// ProductionRequestForm displays the material request form
func (h *Handler) ProductionRequestForm(c *fiber.Ctx) error {
	return c.Render("pages/production/request", fiber.Map{
		"Title":         "Pedidos de Produção",
		"Active":        "production",
		"Requests":      h.Production.Requests(),
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}

// ProductionRequest handles the material request form. The request is only
// recorded by the simulated production module; no purchasing state is
// touched.
func (h *Handler) ProductionRequest(c *fiber.Ctx) error {
	materialIDStr := c.FormValue("material_id")
	quantityStr := c.FormValue("quantity")
	priority := c.FormValue("priority")

	materialID, err1 := strconv.Atoi(materialIDStr)
	quantity, err2 := strconv.Atoi(quantityStr)
	if err1 != nil || err2 != nil || materialID <= 0 || quantity <= 0 || priority == "" {
		h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		return c.Redirect("/production/requests", fiber.StatusSeeOther)
	}

	h.Production.RequestMaterial(materialID, quantity, priority)

	h.Notify.Push("Pedido de material criado com sucesso!", notify.Success)
	return c.Redirect("/production/requests", fiber.StatusSeeOther)
}
