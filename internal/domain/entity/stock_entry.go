package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry é o razão de estoque de um produto: unidades a caminho, unidades
// em mãos e custo médio ponderado. Criado zerado junto com o Product e mutado
// exclusivamente pelo ciclo de vida da compra, dentro da mesma transação.
type StockEntry struct {
	ProductID        string
	OnTheWay         int64 // compradas e ainda não entregues
	InStock          int64 // entregues e disponíveis
	AverageUnitCost  decimal.Decimal
	AverageStockCost decimal.Decimal // AverageUnitCost * InStock, desnormalizado
	UpdatedAt        time.Time
}
