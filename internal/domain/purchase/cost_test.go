package purchase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/revendapp/revenda-api/internal/domain/purchase"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Cenário de referência: 1000 + 50 - 100 - 20 - (5000*30/1000) = 780.
func TestFinalCost_CenarioCompleto(t *testing.T) {
	got := purchase.FinalCost(purchase.CostInput{
		PaidValue:       dec("1000"),
		Freight:         dec("50"),
		AdvanceDiscount: dec("100"),
		Cashback:        dec("20"),
		Points:          5000,
		Thousand:        dec("30"),
	})
	assert.True(t, dec("780").Equal(got), "esperava 780, veio %s", got)
}

// Campos ausentes valem zero: só o valor pago conta.
func TestFinalCost_CamposAusentesValemZero(t *testing.T) {
	got := purchase.FinalCost(purchase.CostInput{PaidValue: dec("250.50")})
	assert.True(t, dec("250.50").Equal(got))
}

func TestFinalCost_TudoZero(t *testing.T) {
	got := purchase.FinalCost(purchase.CostInput{})
	assert.True(t, got.IsZero())
}

// Mesmo input → mesmo output (função pura).
func TestFinalCost_Deterministico(t *testing.T) {
	in := purchase.CostInput{
		PaidValue: dec("3999.99"),
		Freight:   dec("25.90"),
		Cashback:  dec("119.99"),
		Points:    12000,
		Thousand:  dec("27.50"),
	}
	first := purchase.FinalCost(in)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(purchase.FinalCost(in)))
	}
}

// Milheiro fracionário não perde precisão com decimal.
func TestFinalCost_MilheiroFracionario(t *testing.T) {
	got := purchase.FinalCost(purchase.CostInput{
		PaidValue: dec("100"),
		Points:    1500,
		Thousand:  dec("21.33"),
	})
	// 1500 * 21.33 / 1000 = 31.995
	assert.True(t, dec("68.005").Equal(got), "veio %s", got)
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{purchase.StatusPending, purchase.StatusDelivered, true},
		{purchase.StatusDelivered, purchase.StatusSold, true},
		{purchase.StatusPending, purchase.StatusSold, false},
		{purchase.StatusDelivered, purchase.StatusPending, false},
		{purchase.StatusSold, purchase.StatusPending, false},
		{purchase.StatusSold, purchase.StatusDelivered, false},
		{purchase.StatusPending, purchase.StatusPending, false},
		{"", purchase.StatusDelivered, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, purchase.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestValidStatus_Table(t *testing.T) {
	assert.True(t, purchase.ValidStatus(purchase.StatusPending))
	assert.True(t, purchase.ValidStatus(purchase.StatusDelivered))
	assert.True(t, purchase.ValidStatus(purchase.StatusSold))
	assert.False(t, purchase.ValidStatus("CANCELLED"))
	assert.False(t, purchase.ValidStatus(""))
}
