package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar uma compra.
// Datas no formato "2006-01-02". Campos monetários ausentes valem zero.
// Status e PointsReceived podem sobrescrever os padrões (PENDING / false).
type CreatePurchaseRequest struct {
	ProductID       string          `json:"product_id" validate:"required"`
	PurchaseDate    string          `json:"purchase_date"`
	DeliveryDate    *string         `json:"delivery_date"`
	OrderNumber     string          `json:"order_number"`
	PaidValue       decimal.Decimal `json:"paid_value"`
	Freight         decimal.Decimal `json:"freight"`
	AdvanceDiscount decimal.Decimal `json:"advance_discount"`
	Cashback        decimal.Decimal `json:"cashback"`
	Points          int64           `json:"points"`
	Thousand        decimal.Decimal `json:"thousand"`
	PointsPerReal   decimal.Decimal `json:"points_per_real"`
	ClubAndStore    string          `json:"club_and_store"`
	Account         string          `json:"account"`
	Status          *string         `json:"status"`
	PointsReceived  *bool           `json:"points_received"`
	Units           int64           `json:"units"`
}

// UpdatePurchaseRequest atualização parcial: cada campo é independente e só é
// gravado se presente. Qualquer campo de custo presente dispara o recálculo do
// custo final no servidor; FinalCost nunca é aceito do cliente.
type UpdatePurchaseRequest struct {
	PurchaseDate    *string          `json:"purchase_date"`
	DeliveryDate    *string          `json:"delivery_date"`
	OrderNumber     *string          `json:"order_number"`
	PaidValue       *decimal.Decimal `json:"paid_value"`
	Freight         *decimal.Decimal `json:"freight"`
	AdvanceDiscount *decimal.Decimal `json:"advance_discount"`
	Cashback        *decimal.Decimal `json:"cashback"`
	Points          *int64           `json:"points"`
	Thousand        *decimal.Decimal `json:"thousand"`
	PointsPerReal   *decimal.Decimal `json:"points_per_real"`
	ClubAndStore    *string          `json:"club_and_store"`
	Account         *string          `json:"account"`
	Status          *string          `json:"status"`
	PointsReceived  *bool            `json:"points_received"`
}

// TransitionRequest entrada para mudança de status.
type TransitionRequest struct {
	Status       string  `json:"status" validate:"required"`
	DeliveryDate *string `json:"delivery_date"` // usada no PENDING→DELIVERED; padrão: hoje
}

// PointsReceivedRequest marca/desmarca os pontos da compra como creditados.
type PointsReceivedRequest struct {
	Received bool `json:"received"`
}

// PurchaseResponse saída de uma compra.
type PurchaseResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	OrderNumber     string          `json:"order_number"`
	PaidValue       decimal.Decimal `json:"paid_value"`
	Freight         decimal.Decimal `json:"freight"`
	AdvanceDiscount decimal.Decimal `json:"advance_discount"`
	Cashback        decimal.Decimal `json:"cashback"`
	Points          int64           `json:"points"`
	Thousand        decimal.Decimal `json:"thousand"`
	PointsPerReal   decimal.Decimal `json:"points_per_real"`
	ClubAndStore    string          `json:"club_and_store"`
	Account         string          `json:"account"`
	FinalCost       decimal.Decimal `json:"final_cost"`
	PointsReceived  bool            `json:"points_received"`
	Status          string          `json:"status"`
	Units           int64           `json:"units"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
