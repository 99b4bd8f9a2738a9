package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/revendapp/revenda-api/internal/domain/entity"
)

// StockSnapshotItem linha crua da foto do estoque (razão + dados do produto).
type StockSnapshotItem struct {
	ProductID        string
	ProductName      string
	Model            string
	Storage          string
	Color            string
	Active           bool
	OnTheWay         int64
	InStock          int64
	AverageUnitCost  decimal.Decimal
	AverageStockCost decimal.Decimal
	UpdatedAt        time.Time
}

// StockRepository define o porto para consultar/atualizar o razão de estoque
// por produto. As mutações acontecem apenas dentro de transações do ciclo de
// vida da compra, para garantir consistência.
type StockRepository interface {
	Get(productID string) (*entity.StockEntry, error)
	Upsert(entry *entity.StockEntry) error
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE) para
	// serializar mutações concorrentes no mesmo razão. Produto sem linha de
	// razão devolve ErrNotFound; sem linha não há lock.
	GetForUpdate(productID string) (*entity.StockEntry, error)
	// Snapshot devolve o razão de todos os produtos com os dados de catálogo.
	Snapshot() ([]StockSnapshotItem, error)
}
