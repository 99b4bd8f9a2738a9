package dto

import "time"

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Model   string `json:"model"`
	Storage string `json:"storage"`
	Color   string `json:"color"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Model   *string `json:"model"`
	Storage *string `json:"storage"`
	Color   *string `json:"color"`
	Active  *bool   `json:"active"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	Storage   string    `json:"storage"`
	Color     string    `json:"color"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
