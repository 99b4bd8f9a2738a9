package purchase

import (
	"sort"
	"strings"

	"github.com/revendapp/revenda-api/internal/domain/entity"
)

// ProgramBucket total de pontos não recebidos de um programa, com o
// detalhamento pelas contas conhecidas. Derivado, nunca persistido.
type ProgramBucket struct {
	Program   string
	Total     int64
	ByAccount map[string]int64 // apenas contas reconhecidas
}

// ProgramFromLabel extrai o nome do programa do rótulo clube/loja.
// O rótulo é composto com "/" ("CB/Esfera" → "Esfera"); vale o último segmento
// não vazio. Sem segmento útil, devolve fallback (convenção documentada, não
// implícita).
func ProgramFromLabel(clubAndStore, fallback string) string {
	parts := strings.Split(clubAndStore, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return fallback
}

// AggregatePendingPoints agrupa pontos ainda não recebidos por programa.
// Entram compras com PointsReceived=false em qualquer status do ciclo
// (PENDING, DELIVERED e SOLD — vender o item não faz os pontos creditarem).
// Contas fora de knownAccounts contam no total mas não no detalhamento.
// A saída é ordenada por nome de programa para ser determinística.
func AggregatePendingPoints(purchases []entity.Purchase, knownAccounts []string, defaultProgram string) []ProgramBucket {
	known := make(map[string]bool, len(knownAccounts))
	for _, a := range knownAccounts {
		known[a] = true
	}

	buckets := make(map[string]*ProgramBucket)
	for _, p := range purchases {
		if p.PointsReceived || !ValidStatus(p.Status) {
			continue
		}
		program := ProgramFromLabel(p.ClubAndStore, defaultProgram)
		b, ok := buckets[program]
		if !ok {
			b = &ProgramBucket{Program: program, ByAccount: make(map[string]int64)}
			buckets[program] = b
		}
		b.Total += p.Points
		if known[p.Account] {
			b.ByAccount[p.Account] += p.Points
		}
	}

	out := make([]ProgramBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Program < out[j].Program })
	return out
}
