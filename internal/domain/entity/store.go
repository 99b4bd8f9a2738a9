package entity

import "time"

// Store representa uma loja onde as compras são feitas (tabela de referência).
type Store struct {
	ID        string
	Name      string
	Site      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
