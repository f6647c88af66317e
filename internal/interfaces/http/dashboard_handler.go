package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despachosur/facturacion-api/internal/application/analytics"
)

// DashboardHandler maneja las consultas del panel principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
