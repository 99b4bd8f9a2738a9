// Package reporting contém as visões read-only: pontos pendentes por
// programa, foto do estoque e o relatório em PDF. Nada aqui escreve no banco;
// as agregações são recomputadas a cada consulta e seguras de reexecutar.
package reporting

import (
	"context"

	"github.com/revendapp/revenda-api/internal/application/dto"
	"github.com/revendapp/revenda-api/internal/domain/purchase"
	"github.com/revendapp/revenda-api/internal/domain/repository"
	"github.com/revendapp/revenda-api/pkg/logger"
)

// PointsUseCase agrega pontos ainda não recebidos por programa e conta.
type PointsUseCase struct {
	purchaseRepo   repository.PurchaseRepository
	knownAccounts  []string
	defaultProgram string
	log            *logger.Logger
}

// NewPointsUseCase constrói o caso de uso. knownAccounts vem da configuração
// (LOYALTY_ACCOUNTS); contas fora da lista contam só no total do programa.
func NewPointsUseCase(purchaseRepo repository.PurchaseRepository, knownAccounts []string, defaultProgram string, log *logger.Logger) *PointsUseCase {
	return &PointsUseCase{
		purchaseRepo:   purchaseRepo,
		knownAccounts:  knownAccounts,
		defaultProgram: defaultProgram,
		log:            log,
	}
}

// PendingPoints devolve os buckets de pontos pendentes, ordenados por
// programa. Em falha de leitura do store degrada para lista vazia (fallback
// documentado de disponibilidade das consultas read-only), logando o erro.
func (uc *PointsUseCase) PendingPoints(ctx context.Context) (*dto.PendingPointsResponse, error) {
	purchases, err := uc.purchaseRepo.ListPendingPoints()
	if err != nil {
		uc.log.Error().Err(err).Msg("pontos pendentes: falha de leitura, devolvendo vazio")
		return &dto.PendingPointsResponse{Items: []dto.ProgramBucketResponse{}}, nil
	}

	buckets := purchase.AggregatePendingPoints(purchases, uc.knownAccounts, uc.defaultProgram)
	items := make([]dto.ProgramBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		item := dto.ProgramBucketResponse{Program: b.Program, Total: b.Total}
		if len(b.ByAccount) > 0 {
			item.ByAccount = b.ByAccount
		}
		items = append(items, item)
	}
	return &dto.PendingPointsResponse{Items: items}, nil
}
