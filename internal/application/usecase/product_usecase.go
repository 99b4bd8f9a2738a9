package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

// CatalogTxRunner transação para operações de catálogo que tocam o razão:
// criar um produto cria junto o razão zerado; excluir exige razão vazio.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// ProductUseCase CRUD de produtos. Os contadores de estoque e o custo médio
// são geridos pelo ciclo de vida da compra, nunca por aqui.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner CatalogTxRunner
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create cria um produto e o razão de estoque zerado na mesma transação.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Model:     in.Model,
		Storage:   in.Storage,
		Color:     in.Color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.Upsert(&entity.StockEntry{
			ProductID:        product.ID,
			AverageUnitCost:  decimal.Zero,
			AverageStockCost: decimal.Zero,
			UpdatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update atualiza um produto (só grava os campos enviados).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Storage != nil {
		product.Storage = *in.Storage
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista produtos com paginação; onlyActive filtra os inativos.
func (uc *ProductUseCase) List(limit, offset int, onlyActive bool) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset, onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete exclui um produto. Só é permitido com o razão zerado; um produto com
// unidades a caminho ou em estoque devolve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		entry, err := stockRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if entry.OnTheWay != 0 || entry.InStock != 0 {
			return domain.ErrConflict
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Model:     p.Model,
		Storage:   p.Storage,
		Color:     p.Color,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
