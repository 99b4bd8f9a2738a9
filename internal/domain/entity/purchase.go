package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa uma compra feita via programa de fidelidade/cashback.
// FinalCost é sempre derivado dos demais campos monetários pelo cálculo de
// custo do domínio; nunca é aceito como vindo do cliente.
type Purchase struct {
	ID              string
	ProductID       string
	PurchaseDate    time.Time  // data calendário, normalizada para meia-noite UTC
	DeliveryDate    *time.Time // definida apenas quando entregue
	OrderNumber     string
	PaidValue       decimal.Decimal
	Freight         decimal.Decimal
	AdvanceDiscount decimal.Decimal
	Cashback        decimal.Decimal
	Points          int64           // pontos ganhos na compra
	Thousand        decimal.Decimal // valor do milheiro (R$ por 1000 pontos)
	PointsPerReal   decimal.Decimal // informativo, fora do cálculo de custo
	ClubAndStore    string          // rótulo composto, ex.: "CB/Esfera"
	Account         string          // conta à qual a compra é atribuída
	FinalCost       decimal.Decimal
	PointsReceived  bool
	Status          string // PENDING, DELIVERED, SOLD
	Units           int64  // unidades comerciais da compra (observado: 1)
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
