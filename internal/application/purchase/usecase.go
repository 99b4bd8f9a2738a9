// Package purchase implementa o controlador do ciclo de vida da compra:
// criação, atualização parcial, transições de status, exclusão e o
// acoplamento atômico de tudo isso com o razão de estoque.
package purchase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/purchase"
	"github.com/revendapp/revenda-api/internal/domain/repository"
	"github.com/revendapp/revenda-api/internal/domain/stock"
)

const dateLayout = "2006-01-02"

// UseCase controla o ciclo de vida das compras. Toda transição que toca a
// compra e o razão de estoque roda dentro de uma única transação (TxRunner),
// com a linha do razão bloqueada; transição inválida ou contador que ficaria
// negativo rejeitam a operação inteira, sem escrita parcial.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository // leituras fora de transação
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, purchaseRepo repository.PurchaseRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, purchaseRepo: purchaseRepo}
}

// Create registra uma compra e incrementa onTheWay do produto na mesma
// transação: uma compra nunca existe sem a reserva correspondente no razão.
// Status inicial sobrescrito (DELIVERED/SOLD) avança o razão pelas mesmas
// operações, ainda dentro da transação.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	status := purchase.StatusPending
	if in.Status != nil && *in.Status != "" {
		if !purchase.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}
	units := in.Units
	if units <= 0 {
		units = 1
	}

	now := time.Now()
	purchaseDate, err := parseDateOrToday(in.PurchaseDate, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var deliveryDate *time.Time
	if in.DeliveryDate != nil && *in.DeliveryDate != "" {
		d, err := parseDate(*in.DeliveryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		deliveryDate = &d
	}
	// Entregue (ou já vendida) precisa de data de entrega; padrão: hoje.
	if status != purchase.StatusPending && deliveryDate == nil {
		d := normalizeDate(now)
		deliveryDate = &d
	}

	finalCost := purchase.FinalCost(purchase.CostInput{
		PaidValue:       in.PaidValue,
		Freight:         in.Freight,
		AdvanceDiscount: in.AdvanceDiscount,
		Cashback:        in.Cashback,
		Points:          in.Points,
		Thousand:        in.Thousand,
	})

	pointsReceived := false
	if in.PointsReceived != nil {
		pointsReceived = *in.PointsReceived
	}

	p := &entity.Purchase{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		PurchaseDate:    purchaseDate,
		DeliveryDate:    deliveryDate,
		OrderNumber:     in.OrderNumber,
		PaidValue:       in.PaidValue,
		Freight:         in.Freight,
		AdvanceDiscount: in.AdvanceDiscount,
		Cashback:        in.Cashback,
		Points:          in.Points,
		Thousand:        in.Thousand,
		PointsPerReal:   in.PointsPerReal,
		ClubAndStore:    in.ClubAndStore,
		Account:         in.Account,
		FinalCost:       finalCost,
		PointsReceived:  pointsReceived,
		Status:          status,
		Units:           units,
		CreatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(purchaseRepo repository.PurchaseRepository, stockRepo repository.StockRepository) error {
		if err := purchaseRepo.Create(p); err != nil {
			return err
		}
		entry, err := stockRepo.GetForUpdate(p.ProductID)
		if err != nil {
			return err
		}
		stock.Reserve(entry, units)
		if status != purchase.StatusPending {
			if err := stock.Receive(entry, units, unitCost(p)); err != nil {
				return err
			}
		}
		if status == purchase.StatusSold {
			if err := stock.Dispose(entry, units); err != nil {
				return err
			}
		}
		entry.UpdatedAt = now
		return stockRepo.Upsert(entry)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// Transition muda o status da compra. PENDING→DELIVERED move onTheWay para
// inStock e recalcula o custo médio; DELIVERED→SOLD dá baixa no estoque.
// Qualquer outra origem/destino é rejeitada com ErrInvalidTransition antes de
// qualquer escrita.
func (uc *UseCase) Transition(ctx context.Context, id string, in dto.TransitionRequest) (*dto.PurchaseResponse, error) {
	if !purchase.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Purchase
	err := uc.txRunner.Run(ctx, func(purchaseRepo repository.PurchaseRepository, stockRepo repository.StockRepository) error {
		// Lock da compra antes do lock do razão: a segunda transação só lê o
		// status depois que a primeira commitou, nunca um status defasado.
		p, err := purchaseRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if err := uc.applyTransition(p, in.Status, in.DeliveryDate, stockRepo); err != nil {
			return err
		}
		p.UpdatedAt = time.Now()
		if err := purchaseRepo.Update(p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(out), nil
}

// applyTransition valida a transição e aplica a mutação do razão dentro da
// transação corrente. A compra ainda não é gravada aqui.
func (uc *UseCase) applyTransition(p *entity.Purchase, target string, deliveryDate *string, stockRepo repository.StockRepository) error {
	if !purchase.CanTransition(p.Status, target) {
		return domain.ErrInvalidTransition
	}
	entry, err := stockRepo.GetForUpdate(p.ProductID)
	if err != nil {
		return err
	}
	switch target {
	case purchase.StatusDelivered:
		d := normalizeDate(time.Now())
		if deliveryDate != nil && *deliveryDate != "" {
			d, err = parseDate(*deliveryDate)
			if err != nil {
				return domain.ErrInvalidInput
			}
		}
		if err := stock.Receive(entry, p.Units, unitCost(p)); err != nil {
			return err
		}
		p.DeliveryDate = &d
	case purchase.StatusSold:
		if err := stock.Dispose(entry, p.Units); err != nil {
			return err
		}
	}
	p.Status = target
	entry.UpdatedAt = time.Now()
	return stockRepo.Upsert(entry)
}

// Update aplica uma atualização parcial: só grava o que veio no request.
// Campo de custo presente dispara o recálculo do custo final no servidor;
// mudança de status passa pela mesma validação e mutação de razão das
// transições, nunca por escrita direta.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	var out *entity.Purchase
	err := uc.txRunner.Run(ctx, func(purchaseRepo repository.PurchaseRepository, stockRepo repository.StockRepository) error {
		p, err := purchaseRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		if in.PurchaseDate != nil {
			d, err := parseDate(*in.PurchaseDate)
			if err != nil {
				return domain.ErrInvalidInput
			}
			p.PurchaseDate = d
		}
		if in.DeliveryDate != nil {
			d, err := parseDate(*in.DeliveryDate)
			if err != nil {
				return domain.ErrInvalidInput
			}
			p.DeliveryDate = &d
		}
		if in.OrderNumber != nil {
			p.OrderNumber = *in.OrderNumber
		}
		if in.ClubAndStore != nil {
			p.ClubAndStore = *in.ClubAndStore
		}
		if in.Account != nil {
			p.Account = *in.Account
		}
		if in.PointsPerReal != nil {
			p.PointsPerReal = *in.PointsPerReal
		}
		if in.PointsReceived != nil {
			p.PointsReceived = *in.PointsReceived
		}

		costChanged := false
		if in.PaidValue != nil {
			p.PaidValue = *in.PaidValue
			costChanged = true
		}
		if in.Freight != nil {
			p.Freight = *in.Freight
			costChanged = true
		}
		if in.AdvanceDiscount != nil {
			p.AdvanceDiscount = *in.AdvanceDiscount
			costChanged = true
		}
		if in.Cashback != nil {
			p.Cashback = *in.Cashback
			costChanged = true
		}
		if in.Points != nil {
			p.Points = *in.Points
			costChanged = true
		}
		if in.Thousand != nil {
			p.Thousand = *in.Thousand
			costChanged = true
		}
		if costChanged {
			p.FinalCost = purchase.FinalCost(purchase.CostInput{
				PaidValue:       p.PaidValue,
				Freight:         p.Freight,
				AdvanceDiscount: p.AdvanceDiscount,
				Cashback:        p.Cashback,
				Points:          p.Points,
				Thousand:        p.Thousand,
			})
		}

		if in.Status != nil && *in.Status != p.Status {
			if !purchase.ValidStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			if err := uc.applyTransition(p, *in.Status, in.DeliveryDate, stockRepo); err != nil {
				return err
			}
		}

		p.UpdatedAt = time.Now()
		if err := purchaseRepo.Update(p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(out), nil
}

// Delete remove a compra revertendo antes, na mesma transação, o contador do
// razão correspondente ao status atual: PENDING desfaz a reserva, DELIVERED
// dá baixa no estoque, SOLD não toca contadores.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(purchaseRepo repository.PurchaseRepository, stockRepo repository.StockRepository) error {
		p, err := purchaseRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		entry, err := stockRepo.GetForUpdate(p.ProductID)
		if err != nil {
			return err
		}
		switch p.Status {
		case purchase.StatusPending:
			if err := stock.Unreserve(entry, p.Units); err != nil {
				return err
			}
		case purchase.StatusDelivered:
			if err := stock.Dispose(entry, p.Units); err != nil {
				return err
			}
		}
		entry.UpdatedAt = time.Now()
		if err := stockRepo.Upsert(entry); err != nil {
			return err
		}
		return purchaseRepo.Delete(id)
	})
}

// SetPointsReceived marca/desmarca os pontos como creditados. Flag ortogonal
// ao status; não toca o razão de estoque.
func (uc *UseCase) SetPointsReceived(ctx context.Context, id string, received bool) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.PointsReceived = received
	p.UpdatedAt = time.Now()
	if err := uc.purchaseRepo.Update(p); err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// GetByID busca uma compra por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(p), nil
}

// List lista compras com filtros opcionais e paginação. O filtro de programa
// é derivado do rótulo clube/loja e aplicado sobre a página retornada.
func (uc *UseCase) List(ctx context.Context, filter repository.PurchaseFilter) (*dto.PurchaseListResponse, error) {
	if filter.Status != "" && !purchase.ValidStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.purchaseRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		if filter.Program != "" && !strings.EqualFold(purchase.ProgramFromLabel(p.ClubAndStore, ""), filter.Program) {
			continue
		}
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// unitCost devolve o custo por unidade da compra (custo final / unidades).
func unitCost(p *entity.Purchase) decimal.Decimal {
	if p.Units <= 1 {
		return p.FinalCost
	}
	return p.FinalCost.Div(decimal.NewFromInt(p.Units))
}

// normalizeDate trunca para a meia-noite UTC: uma única semântica de data
// calendário para compra e entrega.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseDateOrToday(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return normalizeDate(now), nil
	}
	return parseDate(s)
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	return &dto.PurchaseResponse{
		ID:              p.ID,
		ProductID:       p.ProductID,
		PurchaseDate:    p.PurchaseDate,
		DeliveryDate:    p.DeliveryDate,
		OrderNumber:     p.OrderNumber,
		PaidValue:       p.PaidValue,
		Freight:         p.Freight,
		AdvanceDiscount: p.AdvanceDiscount,
		Cashback:        p.Cashback,
		Points:          p.Points,
		Thousand:        p.Thousand,
		PointsPerReal:   p.PointsPerReal,
		ClubAndStore:    p.ClubAndStore,
		Account:         p.Account,
		FinalCost:       p.FinalCost,
		PointsReceived:  p.PointsReceived,
		Status:          p.Status,
		Units:           p.Units,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
