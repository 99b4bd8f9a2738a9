// Package stock contém a lógica de custo médio ponderado do razão de estoque.
package stock

import "github.com/shopspring/decimal"

// WeightedAverage calcula o novo custo médio após uma entrada (serviço de domínio).
// NovoCusto = ((QtdAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (QtdAtual + QtdEntrada)
// Com QtdAtual+QtdEntrada == 0 o divisor zeraria; nesse caso devolve o custo da entrada.
func WeightedAverage(currentQty int64, currentAvg decimal.Decimal, qty int64, unitCost decimal.Decimal) decimal.Decimal {
	sum := currentQty + qty
	if sum <= 0 {
		return unitCost
	}
	cur := decimal.NewFromInt(currentQty).Mul(currentAvg)
	in := decimal.NewFromInt(qty).Mul(unitCost)
	return cur.Add(in).Div(decimal.NewFromInt(sum))
}

// StockCost devolve o custo total do estoque em mãos (média * quantidade),
// campo desnormalizado do razão.
func StockCost(avg decimal.Decimal, inStock int64) decimal.Decimal {
	return avg.Mul(decimal.NewFromInt(inStock))
}
