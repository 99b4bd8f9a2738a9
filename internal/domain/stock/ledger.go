package stock

import (
	"github.com/shopspring/decimal"

	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
)

// Operações do razão de estoque. São as únicas mutações permitidas sobre um
// StockEntry e rodam sempre dentro da transação do ciclo de vida da compra,
// com a linha do produto bloqueada (SELECT FOR UPDATE). Nenhum contador pode
// ficar negativo; a operação falha inteira com ErrInsufficientStock.

// Reserve registra unidades compradas e ainda não entregues (criação da compra).
func Reserve(e *entity.StockEntry, units int64) {
	e.OnTheWay += units
}

// Unreserve desfaz uma reserva (exclusão de compra ainda PENDING).
func Unreserve(e *entity.StockEntry, units int64) error {
	if e.OnTheWay < units {
		return domain.ErrInsufficientStock
	}
	e.OnTheWay -= units
	return nil
}

// Receive move unidades de "a caminho" para "em estoque" (entrega) e
// recalcula o custo médio ponderado com o custo unitário da compra recebida.
func Receive(e *entity.StockEntry, units int64, unitCost decimal.Decimal) error {
	if e.OnTheWay < units {
		return domain.ErrInsufficientStock
	}
	e.OnTheWay -= units
	e.AverageUnitCost = WeightedAverage(e.InStock, e.AverageUnitCost, units, unitCost)
	e.InStock += units
	e.AverageStockCost = StockCost(e.AverageUnitCost, e.InStock)
	return nil
}

// Dispose retira unidades do estoque (venda, ou exclusão de compra DELIVERED).
// O custo médio unitário não muda; o custo total do estoque acompanha a baixa.
func Dispose(e *entity.StockEntry, units int64) error {
	if e.InStock < units {
		return domain.ErrInsufficientStock
	}
	e.InStock -= units
	e.AverageStockCost = StockCost(e.AverageUnitCost, e.InStock)
	return nil
}
