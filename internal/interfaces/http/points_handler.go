package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendapp/revenda-api/internal/application/reporting"
)

// PointsHandler trata a consulta de pontos pendentes (protegido).
type PointsHandler struct {
	uc *reporting.PointsUseCase
}

// NewPointsHandler constrói o handler.
func NewPointsHandler(uc *reporting.PointsUseCase) *PointsHandler {
	return &PointsHandler{uc: uc}
}

// PendingPoints godoc
// @Summary      Pontos pendentes por programa
// @Description  Soma os pontos das compras com points_received=false, agrupados por programa e detalhados pelas contas conhecidas.
// @Tags         points
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PendingPointsResponse
// @Router       /api/points/pending [get]
func (h *PointsHandler) PendingPoints(c *fiber.Ctx) error {
	out, err := h.uc.PendingPoints(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
