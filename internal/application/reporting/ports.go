package reporting

import (
	"context"

	"github.com/revendapp/revenda-api/internal/application/dto"
)

// StockReportGenerator gera o relatório em PDF da foto do estoque.
// Implementado na infraestrutura (Maroto); aqui só o porto.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, items []dto.StockEntryResponse) ([]byte, error)
}
