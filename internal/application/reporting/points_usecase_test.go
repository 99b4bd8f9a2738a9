package reporting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendapp/revenda-api/internal/application/reporting"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/purchase"
	"github.com/revendapp/revenda-api/internal/domain/repository"
	"github.com/revendapp/revenda-api/pkg/logger"
)

// fakePurchaseRepo implementa só o que o caso de uso de pontos consome.
type fakePurchaseRepo struct {
	repository.PurchaseRepository
	pending []entity.Purchase
	err     error
}

func (f *fakePurchaseRepo) ListPendingPoints() ([]entity.Purchase, error) {
	return f.pending, f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func pendingPurchase(label, account string, points int64) entity.Purchase {
	return entity.Purchase{
		ClubAndStore: label,
		Account:      account,
		Points:       points,
		Status:       purchase.StatusPending,
	}
}

func TestPendingPoints_AgrupaPorProgramaEConta(t *testing.T) {
	repo := &fakePurchaseRepo{pending: []entity.Purchase{
		pendingPurchase("CB/Esfera", "Miri", 1000),
		pendingPurchase("Esfera", "Vini", 500),
		pendingPurchase("Livelo", "Miri", 2000),
		pendingPurchase("Livelo", "Desconhecida", 300), // fora do detalhamento
	}}
	uc := reporting.NewPointsUseCase(repo, []string{"Miri", "Vini", "Pai"}, "Outros", testLogger())

	out, err := uc.PendingPoints(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// Ordenado por programa: Esfera antes de Livelo.
	esfera := out.Items[0]
	assert.Equal(t, "Esfera", esfera.Program)
	assert.Equal(t, int64(1500), esfera.Total)
	assert.Equal(t, int64(1000), esfera.ByAccount["Miri"])
	assert.Equal(t, int64(500), esfera.ByAccount["Vini"])

	livelo := out.Items[1]
	assert.Equal(t, "Livelo", livelo.Program)
	assert.Equal(t, int64(2300), livelo.Total, "conta desconhecida entra no total")
	assert.Equal(t, int64(2000), livelo.ByAccount["Miri"])
	assert.NotContains(t, livelo.ByAccount, "Desconhecida")
}

// Rótulo sem programa cai no programa padrão configurado.
func TestPendingPoints_RotuloVazioUsaPadrao(t *testing.T) {
	repo := &fakePurchaseRepo{pending: []entity.Purchase{
		pendingPurchase("", "Pai", 700),
	}}
	uc := reporting.NewPointsUseCase(repo, []string{"Pai"}, "Outros", testLogger())

	out, err := uc.PendingPoints(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Outros", out.Items[0].Program)
	assert.Equal(t, int64(700), out.Items[0].Total)
}

// Falha de leitura degrada para lista vazia em vez de erro (a consulta é
// read-only e preferimos disponibilidade).
func TestPendingPoints_FalhaDeLeituraDegradaParaVazio(t *testing.T) {
	repo := &fakePurchaseRepo{err: errors.New("conexão caiu")}
	uc := reporting.NewPointsUseCase(repo, []string{"Miri"}, "Outros", testLogger())

	out, err := uc.PendingPoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestPendingPoints_SemCompras(t *testing.T) {
	uc := reporting.NewPointsUseCase(&fakePurchaseRepo{}, []string{"Miri"}, "Outros", testLogger())

	out, err := uc.PendingPoints(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
