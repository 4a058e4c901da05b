package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/agencia-ops/internal/application/directory"
	"github.com/tu-usuario/agencia-ops/internal/application/dto"
)

// TeamHandler expone el listado del equipo de la agencia.
type TeamHandler struct {
	uc *directory.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *directory.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List GET /api/team?limit=50&offset=0
func (h *TeamHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(list)
}
