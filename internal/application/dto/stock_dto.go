package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntryResponse linha da foto do estoque (razão + produto).
// total_in_stock repete average_stock_cost para manter o contrato de leitura
// histórico da API.
type StockEntryResponse struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Model            string          `json:"model"`
	Storage          string          `json:"storage"`
	Color            string          `json:"color"`
	Active           bool            `json:"active"`
	OnTheWay         int64           `json:"on_the_way"`
	InStock          int64           `json:"in_stock"`
	AverageUnitCost  decimal.Decimal `json:"average_unit_cost"`
	AverageStockCost decimal.Decimal `json:"average_stock_cost"`
	TotalInStock     decimal.Decimal `json:"total_in_stock"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// StockSnapshotResponse foto completa do estoque.
type StockSnapshotResponse struct {
	Items []StockEntryResponse `json:"items"`
}
