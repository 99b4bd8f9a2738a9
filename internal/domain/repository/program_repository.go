package repository

import "github.com/revendapp/revenda-api/internal/domain/entity"

// ProgramRepository define o porto de persistência para Program (tabela de referência).
type ProgramRepository interface {
	Create(program *entity.Program) error
	GetByID(id string) (*entity.Program, error)
	Update(program *entity.Program) error
	List(limit, offset int) ([]*entity.Program, error)
	Delete(id string) error
}
