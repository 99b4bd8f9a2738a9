package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (aceita pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador do razão de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `product_id, on_the_way, in_stock, average_unit_cost, average_stock_cost, updated_at`

// Get obtém o razão atual de um produto. Produto sem linha devolve razão zerado.
func (r *StockRepo) Get(productID string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE product_id = $1`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&e.ProductID, &e.OnTheWay, &e.InStock, &e.AverageUnitCost, &e.AverageStockCost, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emptyEntry(productID), nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtém o razão e bloqueia a linha (SELECT FOR UPDATE) para
// serializar mutações concorrentes no mesmo produto. Produto sem linha de
// razão devolve ErrNotFound: sem linha não há lock, e uma entrada zerada sem
// lock deixaria a mutação correr sem serialização.
func (r *StockRepo) GetForUpdate(productID string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_entries WHERE product_id = $1 FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&e.ProductID, &e.OnTheWay, &e.InStock, &e.AverageUnitCost, &e.AverageStockCost, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock entry for update: %w", err)
	}
	return &e, nil
}

// Upsert insere ou substitui o razão de um produto.
func (r *StockRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, on_the_way, in_stock, average_unit_cost, average_stock_cost, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (product_id)
		DO UPDATE SET on_the_way = EXCLUDED.on_the_way, in_stock = EXCLUDED.in_stock,
			average_unit_cost = EXCLUDED.average_unit_cost, average_stock_cost = EXCLUDED.average_stock_cost,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.ProductID, entry.OnTheWay, entry.InStock, entry.AverageUnitCost, entry.AverageStockCost,
	)
	if err != nil {
		return fmt.Errorf("upsert stock entry: %w", err)
	}
	return nil
}

// Snapshot devolve o razão de todos os produtos com os dados de catálogo.
func (r *StockRepo) Snapshot() ([]repository.StockSnapshotItem, error) {
	query := `
		SELECT s.product_id, p.name, p.model, p.storage, p.color, p.active,
			s.on_the_way, s.in_stock, s.average_unit_cost, s.average_stock_cost, s.updated_at
		FROM stock_entries s
		JOIN products p ON p.id = s.product_id
		ORDER BY p.name, p.model`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}
	defer rows.Close()
	var list []repository.StockSnapshotItem
	for rows.Next() {
		var it repository.StockSnapshotItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Model, &it.Storage, &it.Color, &it.Active,
			&it.OnTheWay, &it.InStock, &it.AverageUnitCost, &it.AverageStockCost, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock snapshot: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func emptyEntry(productID string) *entity.StockEntry {
	return &entity.StockEntry{
		ProductID:        productID,
		AverageUnitCost:  decimal.Zero,
		AverageStockCost: decimal.Zero,
	}
}
