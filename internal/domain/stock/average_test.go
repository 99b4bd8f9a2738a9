package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revendapp/revenda-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Primeira entrada em estoque vazio: a média é o próprio custo unitário.
func TestWeightedAverage_EstoqueVazio(t *testing.T) {
	got := stock.WeightedAverage(0, decimal.Zero, 1, dec("780"))
	assert.True(t, dec("780").Equal(got))
}

// (2*100 + 1*160) / 3 = 120
func TestWeightedAverage_Ponderada(t *testing.T) {
	got := stock.WeightedAverage(2, dec("100"), 1, dec("160"))
	assert.True(t, dec("120").Equal(got), "veio %s", got)
}

// Guarda de divisão por zero: soma zero devolve o custo da entrada.
func TestWeightedAverage_SomaZero(t *testing.T) {
	got := stock.WeightedAverage(0, dec("50"), 0, dec("99.90"))
	assert.True(t, dec("99.90").Equal(got))
}

func TestStockCost(t *testing.T) {
	got := stock.StockCost(dec("120.50"), 3)
	assert.True(t, dec("361.50").Equal(got))

	assert.True(t, stock.StockCost(dec("120.50"), 0).IsZero())
}
