package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/purchasing/notify"
)

// StockReserveForm displays the material reservation form
func (h *Handler) StockReserveForm(c *fiber.Ctx) error {
	return c.Render("pages/stock/reserve", fiber.Map{
		"Title":         "Reserva de Material",
		"Active":        "stock",
		"Items":         h.Inventory.Items(),
		"Notifications": h.Notify.Active(),
		"StoreOps":      c.Locals("StoreOps"),
		"TotalStoreOps": c.Locals("TotalStoreOps"),
	}, "layouts/base")
}

// StockReserve handles the reservation form. The purchasing module only
// forwards the request to the simulated stock module and reports success;
// no purchasing state is touched.
func (h *Handler) StockReserve(c *fiber.Ctx) error {
	materialIDStr := c.FormValue("material_id")
	quantityStr := c.FormValue("quantity")

	materialID, err1 := strconv.Atoi(materialIDStr)
	quantity, err2 := strconv.Atoi(quantityStr)
	if err1 != nil || err2 != nil || materialID <= 0 || quantity <= 0 {
		h.Notify.Push("Por favor, preencha todos os campos", notify.Danger)
		return c.Redirect("/stock/reserve", fiber.StatusSeeOther)
	}

	if err := h.Inventory.Reserve(materialID, quantity); err != nil {
		log.Warn().Err(err).Int("material_id", materialID).Msg("stock reservation not honored by inventory")
	}

	h.Notify.Push(fmt.Sprintf("%d unidades de material #%d reservadas com sucesso!", quantity, materialID), notify.Success)
	return c.Redirect("/stock/reserve", fiber.StatusSeeOther)
}
