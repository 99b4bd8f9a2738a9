// Package purchase contém os serviços de domínio do ciclo de vida de compras:
// cálculo de custo final, máquina de status e agregação de pontos pendentes.
package purchase

import "github.com/shopspring/decimal"

// CostInput entradas monetárias do cálculo de custo final.
// Campos ausentes chegam como zero (decimal.Zero / 0) e nunca são erro.
type CostInput struct {
	PaidValue       decimal.Decimal
	Freight         decimal.Decimal
	AdvanceDiscount decimal.Decimal
	Cashback        decimal.Decimal
	Points          int64
	Thousand        decimal.Decimal // valor do milheiro: R$ por 1000 pontos
}

var thousandDivisor = decimal.NewFromInt(1000)

// FinalCost calcula o custo líquido de uma compra (serviço de dominio, puro).
//
//	pointsValue = points * thousand / 1000
//	finalCost   = paidValue + freight - advanceDiscount - cashback - pointsValue
//
// Frete soma ao custo de aquisição; desconto antecipado, cashback e o valor
// imputado aos pontos ganhos reduzem o custo líquido.
func FinalCost(in CostInput) decimal.Decimal {
	pointsValue := decimal.NewFromInt(in.Points).Mul(in.Thousand).Div(thousandDivisor)
	return in.PaidValue.
		Add(in.Freight).
		Sub(in.AdvanceDiscount).
		Sub(in.Cashback).
		Sub(pointsValue)
}
