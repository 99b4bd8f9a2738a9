package dto

import "time"

// CreateStoreRequest entrada para criar uma loja.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Site string `json:"site"`
}

// UpdateStoreRequest entrada para atualizar uma loja (campos opcionais).
type UpdateStoreRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Site *string `json:"site"`
}

// StoreResponse saída de uma loja.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Site      string    `json:"site"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse lista paginada de lojas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
