package purchase

import (
	"context"

	"github.com/revendapp/revenda-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade entre a escrita da
// compra e a mutação do razão de estoque: ou as duas entram, ou nenhuma.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		stockRepo repository.StockRepository,
	) error) error
}
