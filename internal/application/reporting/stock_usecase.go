package reporting

import (
	"context"
	"fmt"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

// StockUseCase monta a foto do estoque (razão + dados do produto) e o
// relatório em PDF correspondente.
type StockUseCase struct {
	stockRepo repository.StockRepository
	pdf       StockReportGenerator
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, pdf StockReportGenerator) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, pdf: pdf}
}

// Snapshot devolve o razão de todos os produtos. Leitura simples, pode ver um
// estado levemente defasado sob escrita concorrente.
func (uc *StockUseCase) Snapshot(ctx context.Context) (*dto.StockSnapshotResponse, error) {
	rows, err := uc.stockRepo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("foto do estoque: %w", err)
	}
	items := make([]dto.StockEntryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockEntryResponse{
			ProductID:        r.ProductID,
			ProductName:      r.ProductName,
			Model:            r.Model,
			Storage:          r.Storage,
			Color:            r.Color,
			Active:           r.Active,
			OnTheWay:         r.OnTheWay,
			InStock:          r.InStock,
			AverageUnitCost:  r.AverageUnitCost,
			AverageStockCost: r.AverageStockCost,
			TotalInStock:     r.AverageStockCost,
			UpdatedAt:        r.UpdatedAt,
		})
	}
	return &dto.StockSnapshotResponse{Items: items}, nil
}

// ReportPDF gera o relatório em PDF da foto atual do estoque.
func (uc *StockUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	snapshot, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	bytes, err := uc.pdf.GenerateStockReport(ctx, snapshot.Items)
	if err != nil {
		return nil, fmt.Errorf("relatório de estoque: %w", err)
	}
	return bytes, nil
}
