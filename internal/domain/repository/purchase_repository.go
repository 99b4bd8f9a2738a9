package repository

import "github.com/revendapp/revenda-api/internal/domain/entity"

// PurchaseFilter filtros de listagem de compras. Campos vazios não filtram.
// Program é derivado do rótulo clube/loja e aplicado no caso de uso, não
// no SQL.
type PurchaseFilter struct {
	ID        string
	ProductID string
	Status    string
	Account   string
	Program   string
	Limit     int
	Offset    int
}

// PurchaseRepository define o porto de persistência para Purchase (DIP).
// Escritas acopladas ao razão de estoque rodam dentro do TxRunner.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// GetByIDForUpdate obtém a compra bloqueando a linha (SELECT FOR UPDATE).
	// É a leitura obrigatória dentro do TxRunner: sem o lock, duas transações
	// concorrentes leem o mesmo status e aplicam a mesma mutação de razão duas
	// vezes.
	GetByIDForUpdate(id string) (*entity.Purchase, error)
	Update(p *entity.Purchase) error
	Delete(id string) error
	List(filter PurchaseFilter) ([]*entity.Purchase, error)
	// ListPendingPoints devolve as compras com pontos ainda não recebidos,
	// insumo da agregação por programa.
	ListPendingPoints() ([]entity.Purchase, error)
}
