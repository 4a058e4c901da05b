package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/agencia-ops/internal/application/analytics"
	"github.com/tu-usuario/agencia-ops/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve el resumen de la agencia.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (total_clients, active_projects, total_projects,
// total_revenue, pending_invoices). No requiere parámetros.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(stats)
}
