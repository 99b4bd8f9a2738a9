package repository

import "github.com/revendapp/revenda-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
// O razão de estoque correspondente é criado zerado junto com o produto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int, onlyActive bool) ([]*entity.Product, error)
	Delete(id string) error
}
