package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendapp/revenda-api/internal/application/reporting"
)

// StockHandler trata as consultas do razão de estoque (protegido).
type StockHandler struct {
	uc *reporting.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *reporting.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Snapshot godoc
// @Summary      Foto do estoque
// @Description  Razão de todos os produtos: a caminho, em estoque, custo médio e custo total.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSnapshotResponse
// @Router       /api/stock [get]
func (h *StockHandler) Snapshot(c *fiber.Ctx) error {
	out, err := h.uc.Snapshot(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Relatório de estoque em PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	bytes, err := h.uc.ReportPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-estoque.pdf"`)
	return c.Send(bytes)
}
