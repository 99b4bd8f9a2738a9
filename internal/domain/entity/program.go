package entity

import "time"

// Program representa um programa de pontos/fidelidade (tabela de referência).
// O vínculo compra→programa continua no rótulo ClubAndStore da compra.
type Program struct {
	ID        string
	Name      string // ex.: Livelo, Esfera
	Club      string // clube associado, ex.: CB (vazio se não houver)
	CreatedAt time.Time
	UpdatedAt time.Time
}
