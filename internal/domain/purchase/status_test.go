package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revendapp/revenda-api/internal/domain/purchase"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, purchase.ValidStatus(purchase.StatusPending))
	assert.True(t, purchase.ValidStatus(purchase.StatusDelivered))
	assert.True(t, purchase.ValidStatus(purchase.StatusSold))

	assert.False(t, purchase.ValidStatus(""))
	assert.False(t, purchase.ValidStatus("pending"), "status é case-sensitive")
	assert.False(t, purchase.ValidStatus("CANCELLED"))
}

// A máquina só permite avançar um passo: PENDING→DELIVERED e DELIVERED→SOLD.
func TestCanTransition(t *testing.T) {
	assert.True(t, purchase.CanTransition(purchase.StatusPending, purchase.StatusDelivered))
	assert.True(t, purchase.CanTransition(purchase.StatusDelivered, purchase.StatusSold))

	// Sem saltos, sem retrocesso, sem autotransição.
	assert.False(t, purchase.CanTransition(purchase.StatusPending, purchase.StatusSold))
	assert.False(t, purchase.CanTransition(purchase.StatusDelivered, purchase.StatusPending))
	assert.False(t, purchase.CanTransition(purchase.StatusSold, purchase.StatusDelivered))
	assert.False(t, purchase.CanTransition(purchase.StatusSold, purchase.StatusPending))
	assert.False(t, purchase.CanTransition(purchase.StatusPending, purchase.StatusPending))
	assert.False(t, purchase.CanTransition(purchase.StatusSold, "CANCELLED"))
}
