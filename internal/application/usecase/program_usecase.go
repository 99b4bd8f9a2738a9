package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

// ProgramUseCase CRUD simples para programas de pontos (tabela de referência).
type ProgramUseCase struct {
	repo repository.ProgramRepository
}

// NewProgramUseCase constrói o caso de uso.
func NewProgramUseCase(repo repository.ProgramRepository) *ProgramUseCase {
	return &ProgramUseCase{repo: repo}
}

// Create cria um programa.
func (uc *ProgramUseCase) Create(in dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	program := &entity.Program{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Club:      in.Club,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(program); err != nil {
		return nil, err
	}
	return toProgramResponse(program), nil
}

// GetByID obtém um programa por ID.
func (uc *ProgramUseCase) GetByID(id string) (*dto.ProgramResponse, error) {
	program, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	return toProgramResponse(program), nil
}

// Update atualiza um programa (só grava os campos enviados).
func (uc *ProgramUseCase) Update(id string, in dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	program, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	if in.Name != nil {
		program.Name = *in.Name
	}
	if in.Club != nil {
		program.Club = *in.Club
	}
	program.UpdatedAt = time.Now()
	if err := uc.repo.Update(program); err != nil {
		return nil, err
	}
	return toProgramResponse(program), nil
}

// List lista programas com paginação.
func (uc *ProgramUseCase) List(limit, offset int) (*dto.ProgramListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProgramResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProgramResponse(p))
	}
	return &dto.ProgramListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete exclui um programa por ID.
func (uc *ProgramUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProgramResponse(p *entity.Program) *dto.ProgramResponse {
	if p == nil {
		return nil
	}
	return &dto.ProgramResponse{
		ID:        p.ID,
		Name:      p.Name,
		Club:      p.Club,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
