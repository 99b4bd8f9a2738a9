package dto

import "time"

// CreateProgramRequest entrada para criar um programa de pontos.
type CreateProgramRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Club string `json:"club"`
}

// UpdateProgramRequest entrada para atualizar um programa (campos opcionais).
type UpdateProgramRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Club *string `json:"club"`
}

// ProgramResponse saída de um programa.
type ProgramResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Club      string    `json:"club"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgramListResponse lista paginada de programas.
type ProgramListResponse struct {
	Items []ProgramResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
