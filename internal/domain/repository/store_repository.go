package repository

import "github.com/revendapp/revenda-api/internal/domain/entity"

// StoreRepository define o porto de persistência para Store (tabela de referência).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	List(limit, offset int) ([]*entity.Store, error)
	Delete(id string) error
}
