package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementação de PurchaseRepository sobre PostgreSQL (aceita pool ou tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository constrói o adaptador de compras. Passar pool ou tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, product_id, purchase_date, delivery_date, order_number,
	paid_value, freight, advance_discount, cashback, points, thousand, points_per_real,
	club_and_store, account, final_cost, points_received, status, units, created_by,
	created_at, updated_at`

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(
		&p.ID, &p.ProductID, &p.PurchaseDate, &p.DeliveryDate, &p.OrderNumber,
		&p.PaidValue, &p.Freight, &p.AdvanceDiscount, &p.Cashback, &p.Points, &p.Thousand, &p.PointsPerReal,
		&p.ClubAndStore, &p.Account, &p.FinalCost, &p.PointsReceived, &p.Status, &p.Units, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste uma nova compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProductID, p.PurchaseDate, p.DeliveryDate, p.OrderNumber,
		p.PaidValue, p.Freight, p.AdvanceDiscount, p.Cashback, p.Points, p.Thousand, p.PointsPerReal,
		p.ClubAndStore, p.Account, p.FinalCost, p.PointsReceived, p.Status, p.Units, p.CreatedBy,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtém uma compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtém a compra e bloqueia a linha (SELECT FOR UPDATE).
// O lock da compra é sempre adquirido antes do lock do razão, na mesma ordem
// em todas as transações, para não haver deadlock entre elas.
func (r *PurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 FOR UPDATE`
	p, err := scanPurchase(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase for update: %w", err)
	}
	return p, nil
}

// Update regrava todos os campos mutáveis da compra.
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases SET product_id = $2, purchase_date = $3, delivery_date = $4, order_number = $5,
			paid_value = $6, freight = $7, advance_discount = $8, cashback = $9, points = $10,
			thousand = $11, points_per_real = $12, club_and_store = $13, account = $14,
			final_cost = $15, points_received = $16, status = $17, units = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ProductID, p.PurchaseDate, p.DeliveryDate, p.OrderNumber,
		p.PaidValue, p.Freight, p.AdvanceDiscount, p.Cashback, p.Points,
		p.Thousand, p.PointsPerReal, p.ClubAndStore, p.Account,
		p.FinalCost, p.PointsReceived, p.Status, p.Units, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete exclui uma compra por ID.
func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// List lista compras pelo filtro; campos vazios não filtram.
func (r *PurchaseRepo) List(filter repository.PurchaseFilter) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE ($1 = '' OR id::text = $1)
			AND ($2 = '' OR product_id::text = $2)
			AND ($3 = '' OR status = $3)
			AND ($4 = '' OR account = $4)
		ORDER BY purchase_date DESC, created_at DESC
		LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query,
		filter.ID, filter.ProductID, filter.Status, filter.Account, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListPendingPoints devolve todas as compras com pontos ainda não recebidos,
// em qualquer status. Insumo da agregação de pontos por programa.
func (r *PurchaseRepo) ListPendingPoints() ([]entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE points_received = false`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pending points: %w", err)
	}
	defer rows.Close()
	var list []entity.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}
