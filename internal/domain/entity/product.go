package entity

import "time"

// Product representa um item revendável do catálogo (ex.: um aparelho em uma
// variante específica de armazenamento e cor). O estoque fica em StockEntry;
// aqui só a identidade e o flag de ativo.
type Product struct {
	ID        string
	Name      string
	Model     string
	Storage   string // variante de armazenamento, ex.: "128GB"
	Color     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
