package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/purchase"
)

const defaultProgram = "Outros"

var knownAccounts = []string{"Miri", "Vini", "Pai"}

func TestProgramFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"CB/Esfera", "Esfera"},
		{"Livelo", "Livelo"},
		{"CB/Esfera/", "Esfera"}, // segmento final vazio é ignorado
		{" / ", "Outros"},
		{"", "Outros"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, purchase.ProgramFromLabel(c.label, defaultProgram), "label %q", c.label)
	}
}

// Cenário da agregação: duas compras pendentes em programas distintos,
// a primeira atribuída a uma conta conhecida.
func TestAggregatePendingPoints_Cenario(t *testing.T) {
	purchases := []entity.Purchase{
		{ClubAndStore: "CB/Esfera", Points: 100, Account: "Miri", Status: purchase.StatusPending},
		{ClubAndStore: "Livelo", Points: 200, Account: "desconhecida", Status: purchase.StatusDelivered},
	}

	got := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	require.Len(t, got, 2)

	// Ordenado por nome de programa: Esfera antes de Livelo.
	assert.Equal(t, "Esfera", got[0].Program)
	assert.Equal(t, int64(100), got[0].Total)
	assert.Equal(t, int64(100), got[0].ByAccount["Miri"])

	assert.Equal(t, "Livelo", got[1].Program)
	assert.Equal(t, int64(200), got[1].Total)
	// Conta não reconhecida entra no total mas não no detalhamento.
	assert.Empty(t, got[1].ByAccount)
}

func TestAggregatePendingPoints_IgnoraPontosJaRecebidos(t *testing.T) {
	purchases := []entity.Purchase{
		{ClubAndStore: "Livelo", Points: 500, Status: purchase.StatusPending, PointsReceived: true},
		{ClubAndStore: "Livelo", Points: 300, Status: purchase.StatusPending},
	}
	got := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	require.Len(t, got, 1)
	assert.Equal(t, int64(300), got[0].Total)
}

// Compras SOLD seguem pendentes: vender o item não credita os pontos.
func TestAggregatePendingPoints_VendidaAindaConta(t *testing.T) {
	purchases := []entity.Purchase{
		{ClubAndStore: "CB/Esfera", Points: 800, Account: "Vini", Status: purchase.StatusSold},
	}
	got := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	require.Len(t, got, 1)
	assert.Equal(t, int64(800), got[0].Total)
	assert.Equal(t, int64(800), got[0].ByAccount["Vini"])
}

func TestAggregatePendingPoints_AcumulaMesmoPrograma(t *testing.T) {
	purchases := []entity.Purchase{
		{ClubAndStore: "CB/Esfera", Points: 100, Account: "Miri", Status: purchase.StatusPending},
		{ClubAndStore: "Sub/Esfera", Points: 250, Account: "Miri", Status: purchase.StatusDelivered},
		{ClubAndStore: "Esfera", Points: 50, Account: "Pai", Status: purchase.StatusPending},
	}
	got := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	require.Len(t, got, 1)
	assert.Equal(t, int64(400), got[0].Total)
	assert.Equal(t, int64(350), got[0].ByAccount["Miri"])
	assert.Equal(t, int64(50), got[0].ByAccount["Pai"])
}

// Idempotência: reexecutar sem escritas intermediárias dá buckets idênticos.
func TestAggregatePendingPoints_Idempotente(t *testing.T) {
	purchases := []entity.Purchase{
		{ClubAndStore: "Livelo", Points: 200, Status: purchase.StatusPending},
		{ClubAndStore: "CB/Esfera", Points: 100, Account: "Miri", Status: purchase.StatusPending},
		{ClubAndStore: "Azul", Points: 700, Account: "Pai", Status: purchase.StatusDelivered},
	}
	first := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	second := purchase.AggregatePendingPoints(purchases, knownAccounts, defaultProgram)
	assert.Equal(t, first, second)
}

func TestAggregatePendingPoints_Vazio(t *testing.T) {
	got := purchase.AggregatePendingPoints(nil, knownAccounts, defaultProgram)
	assert.Empty(t, got)
}
