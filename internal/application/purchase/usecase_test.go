package purchase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revendapp/revenda-api/internal/application/dto"
	apppurchase "github.com/revendapp/revenda-api/internal/application/purchase"
	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	domainpurchase "github.com/revendapp/revenda-api/internal/domain/purchase"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória: simulam o TxRunner com semântica de rollback (as escritas
// só são aplicadas no "commit", ou seja, quando fn devolve nil).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	purchases map[string]entity.Purchase
	stock     map[string]entity.StockEntry
}

func newMemStore() *memStore {
	return &memStore{
		purchases: make(map[string]entity.Purchase),
		stock:     make(map[string]entity.StockEntry),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.stock {
		c.stock[k] = v
	}
	return c
}

type memPurchaseRepo struct{ s *memStore }

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	r.s.purchases[p.ID] = *p
	return nil
}

func (r *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memPurchaseRepo) GetByIDForUpdate(id string) (*entity.Purchase, error) {
	return r.GetByID(id)
}

func (r *memPurchaseRepo) Update(p *entity.Purchase) error {
	if _, ok := r.s.purchases[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.purchases[p.ID] = *p
	return nil
}

func (r *memPurchaseRepo) Delete(id string) error {
	delete(r.s.purchases, id)
	return nil
}

func (r *memPurchaseRepo) List(filter repository.PurchaseFilter) ([]*entity.Purchase, error) {
	out := []*entity.Purchase{}
	for _, p := range r.s.purchases {
		if filter.ID != "" && p.ID != filter.ID {
			continue
		}
		if filter.ProductID != "" && p.ProductID != filter.ProductID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Account != "" && p.Account != filter.Account {
			continue
		}
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPurchaseRepo) ListPendingPoints() ([]entity.Purchase, error) {
	out := []entity.Purchase{}
	for _, p := range r.s.purchases {
		if !p.PointsReceived {
			out = append(out, p)
		}
	}
	return out, nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(productID string) (*entity.StockEntry, error) {
	e, ok := r.s.stock[productID]
	if !ok {
		return &entity.StockEntry{ProductID: productID, AverageUnitCost: decimal.Zero, AverageStockCost: decimal.Zero}, nil
	}
	cp := e
	return &cp, nil
}

func (r *memStockRepo) GetForUpdate(productID string) (*entity.StockEntry, error) {
	e, ok := r.s.stock[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := e
	return &cp, nil
}

func (r *memStockRepo) Upsert(entry *entity.StockEntry) error {
	r.s.stock[entry.ProductID] = *entry
	return nil
}

func (r *memStockRepo) Snapshot() ([]repository.StockSnapshotItem, error) {
	return nil, nil
}

type memProductRepo struct{ products map[string]entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = *p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = *p; return nil }
func (r *memProductRepo) List(limit, offset int, onlyActive bool) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

// memTxRunner aplica fn sobre uma cópia do store e só promove a cópia se fn
// devolver nil — espelha o Commit/Rollback do TxRunner real.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.PurchaseRepository, repository.StockRepository) error) error {
	work := t.s.clone()
	if err := fn(&memPurchaseRepo{s: work}, &memStockRepo{s: work}); err != nil {
		return err
	}
	t.s.purchases = work.purchases
	t.s.stock = work.stock
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const productID = "11111111-1111-1111-1111-111111111111"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func buildUseCase() (*apppurchase.UseCase, *memStore) {
	store := newMemStore()
	store.stock[productID] = entity.StockEntry{
		ProductID:        productID,
		AverageUnitCost:  decimal.Zero,
		AverageStockCost: decimal.Zero,
	}
	products := &memProductRepo{products: map[string]entity.Product{
		productID: {ID: productID, Name: "iPhone 15", Storage: "128GB", Color: "preto", Active: true},
	}}
	uc := apppurchase.NewUseCase(&memTxRunner{s: store}, products, &memPurchaseRepo{s: store})
	return uc, store
}

func createRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		ProductID:       productID,
		PurchaseDate:    "2024-03-10",
		OrderNumber:     "PED-001",
		PaidValue:       dec("1000"),
		Freight:         dec("50"),
		AdvanceDiscount: dec("100"),
		Cashback:        dec("20"),
		Points:          5000,
		Thousand:        dec("30"),
		ClubAndStore:    "CB/Esfera",
		Account:         "Miri",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Criação: custo final calculado no servidor e reserva no razão, atômicos.
func TestCreate_CalculaCustoEReserva(t *testing.T) {
	uc, store := buildUseCase()

	out, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	// finalCost = 1000+50-100-20-(5000*30/1000) = 780
	assert.True(t, dec("780").Equal(out.FinalCost), "veio %s", out.FinalCost)
	assert.Equal(t, domainpurchase.StatusPending, out.Status)
	assert.False(t, out.PointsReceived)

	entry := store.stock[productID]
	assert.Equal(t, int64(1), entry.OnTheWay)
	assert.Equal(t, int64(0), entry.InStock)

	// Round-trip: a compra listada traz o mesmo custo final.
	listed, err := uc.List(context.Background(), repository.PurchaseFilter{ID: out.ID})
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.True(t, out.FinalCost.Equal(listed.Items[0].FinalCost))
}

func TestCreate_SemProduto(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(context.Background(), "user-1", dto.CreatePurchaseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := createRequest()
	in.ProductID = "99999999-9999-9999-9999-999999999999"
	_, err = uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Status inicial sobrescrito para DELIVERED: o razão avança direto para inStock.
func TestCreate_StatusInicialDelivered(t *testing.T) {
	uc, store := buildUseCase()

	in := createRequest()
	st := domainpurchase.StatusDelivered
	in.Status = &st
	out, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	require.NotNil(t, out.DeliveryDate)

	entry := store.stock[productID]
	assert.Equal(t, int64(0), entry.OnTheWay)
	assert.Equal(t, int64(1), entry.InStock)
	assert.True(t, dec("780").Equal(entry.AverageUnitCost))
}

func TestCreate_StatusInvalido(t *testing.T) {
	uc, _ := buildUseCase()
	in := createRequest()
	st := "CANCELLED"
	in.Status = &st
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A data da compra é normalizada para meia-noite UTC.
func TestCreate_NormalizaData(t *testing.T) {
	uc, _ := buildUseCase()
	out, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, out.PurchaseDate.Equal(want))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition
// ──────────────────────────────────────────────────────────────────────────────

// PENDING→DELIVERED: onTheWay→inStock e média ponderada, tudo junto.
func TestTransition_Entrega(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	out, err := uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, domainpurchase.StatusDelivered, out.Status)
	require.NotNil(t, out.DeliveryDate)

	entry := store.stock[productID]
	assert.Equal(t, int64(0), entry.OnTheWay)
	assert.Equal(t, int64(1), entry.InStock)
	assert.True(t, dec("780").Equal(entry.AverageUnitCost))
	assert.True(t, dec("780").Equal(entry.AverageStockCost))
}

// Segunda entrega com custo diferente: média ponderada incremental.
func TestTransition_MediaPonderada(t *testing.T) {
	uc, store := buildUseCase()

	first, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), first.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	in := createRequest()
	in.PaidValue = dec("900")
	in.Freight = decimal.Zero
	in.AdvanceDiscount = decimal.Zero
	in.Cashback = decimal.Zero
	in.Points = 0
	second, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), second.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	entry := store.stock[productID]
	assert.Equal(t, int64(2), entry.InStock)
	// (1*780 + 1*900) / 2 = 840
	assert.True(t, dec("840").Equal(entry.AverageUnitCost), "veio %s", entry.AverageUnitCost)
	assert.True(t, dec("1680").Equal(entry.AverageStockCost))
}

// DELIVERED→SOLD dá baixa no estoque.
func TestTransition_Venda(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	out, err := uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusSold})
	require.NoError(t, err)
	assert.Equal(t, domainpurchase.StatusSold, out.Status)

	entry := store.stock[productID]
	assert.Equal(t, int64(0), entry.InStock)
	assert.True(t, entry.AverageStockCost.IsZero())
}

// Transição inválida: nada muda, nem compra nem razão.
func TestTransition_InvalidaNaoMutaNada(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	before := store.stock[productID]
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusPending})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	after := store.stock[productID]
	assert.Equal(t, before, after)
	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domainpurchase.StatusDelivered, got.Status)
}

func TestTransition_CompraInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Transition(context.Background(), "nao-existe", dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// onTheWay nunca fica negativo: entrega sem reserva é rejeitada sem escrita parcial.
func TestTransition_EstoqueInsuficienteSemEscritaParcial(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	// Zera a reserva por fora para simular o razão inconsistente.
	entry := store.stock[productID]
	entry.OnTheWay = 0
	store.stock[productID] = entry

	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback: status segue PENDING e o razão não mudou.
	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domainpurchase.StatusPending, got.Status)
	assert.Equal(t, int64(0), store.stock[productID].InStock)
}

// staleReadPurchaseRepo devolve um snapshot defasado na leitura sem lock; a
// leitura com lock vê o estado já commitado no store.
type staleReadPurchaseRepo struct {
	*memPurchaseRepo
	stale entity.Purchase
}

func (r *staleReadPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	cp := r.stale
	return &cp, nil
}

type staleReadTxRunner struct {
	s     *memStore
	stale entity.Purchase
}

func (t *staleReadTxRunner) Run(ctx context.Context, fn func(repository.PurchaseRepository, repository.StockRepository) error) error {
	work := t.s.clone()
	repo := &staleReadPurchaseRepo{memPurchaseRepo: &memPurchaseRepo{s: work}, stale: t.stale}
	if err := fn(repo, &memStockRepo{s: work}); err != nil {
		return err
	}
	t.s.purchases = work.purchases
	t.s.stock = work.stock
	return nil
}

// Duas entregas concorrentes da mesma compra: a segunda transação revalida o
// status pela leitura com lock, vê DELIVERED e é rejeitada. Um snapshot
// defasado de PENDING não pode repetir a entrega nem consumir a reserva de
// outra compra pendente do mesmo produto.
func TestTransition_EntregaConcorrenteNaoRepete(t *testing.T) {
	uc, store := buildUseCase()

	// Duas compras pendentes do mesmo produto: onTheWay = 2.
	first, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	// A primeira entrega commita.
	_, err = uc.Transition(context.Background(), first.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	// Segunda transação sobre a mesma compra, carregando o snapshot de antes
	// do commit (status ainda PENDING) na leitura sem lock.
	stale := store.purchases[first.ID]
	stale.Status = domainpurchase.StatusPending
	raceUC := apppurchase.NewUseCase(
		&staleReadTxRunner{s: store, stale: stale},
		&memProductRepo{products: map[string]entity.Product{productID: {ID: productID, Active: true}}},
		&memPurchaseRepo{s: store},
	)
	_, err = raceUC.Transition(context.Background(), first.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// A reserva da outra compra pendente continua intacta.
	entry := store.stock[productID]
	assert.Equal(t, int64(1), entry.OnTheWay)
	assert.Equal(t, int64(1), entry.InStock)
}

// Produto sem linha de razão: a leitura com lock falha e a compra não é
// criada, em vez de seguir com uma entrada zerada sem serialização.
func TestCreate_ProdutoSemRazaoFalha(t *testing.T) {
	const orphanID = "22222222-2222-2222-2222-222222222222"
	store := newMemStore()
	products := &memProductRepo{products: map[string]entity.Product{
		orphanID: {ID: orphanID, Name: "iPhone 15", Active: true},
	}}
	uc := apppurchase.NewUseCase(&memTxRunner{s: store}, products, &memPurchaseRepo{s: store})

	in := createRequest()
	in.ProductID = orphanID
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Rollback: nada persistido.
	assert.Empty(t, store.purchases)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Campo de custo presente recalcula o custo final; os demais passam como vieram.
func TestUpdate_RecalculaCusto(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	paid := dec("1200")
	order := "PED-002"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdatePurchaseRequest{
		PaidValue:   &paid,
		OrderNumber: &order,
	})
	require.NoError(t, err)

	// 1200+50-100-20-150 = 980
	assert.True(t, dec("980").Equal(out.FinalCost), "veio %s", out.FinalCost)
	assert.Equal(t, "PED-002", out.OrderNumber)
	// Campos não enviados ficam como estavam.
	assert.Equal(t, "CB/Esfera", out.ClubAndStore)
}

func TestUpdate_SemCampoDeCustoNaoRecalcula(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	acct := "Vini"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdatePurchaseRequest{Account: &acct})
	require.NoError(t, err)
	assert.True(t, created.FinalCost.Equal(out.FinalCost))
	assert.Equal(t, "Vini", out.Account)
}

// Mudança de status via update passa pela máquina de transições.
func TestUpdate_StatusPassaPelaTransicao(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	sold := domainpurchase.StatusSold
	_, err = uc.Update(context.Background(), created.ID, dto.UpdatePurchaseRequest{Status: &sold})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	delivered := domainpurchase.StatusDelivered
	out, err := uc.Update(context.Background(), created.ID, dto.UpdatePurchaseRequest{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, domainpurchase.StatusDelivered, out.Status)
	assert.Equal(t, int64(1), store.stock[productID].InStock)
}

func TestUpdate_CompraInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	paid := dec("10")
	_, err := uc.Update(context.Background(), "nao-existe", dto.UpdatePurchaseRequest{PaidValue: &paid})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Excluir PENDING desfaz a reserva.
func TestDelete_PendingReverteReserva(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, int64(0), store.stock[productID].OnTheWay)

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Excluir DELIVERED dá baixa no estoque mantendo o custo médio.
func TestDelete_DeliveredReverteEstoque(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	entry := store.stock[productID]
	assert.Equal(t, int64(0), entry.InStock)
	assert.True(t, dec("780").Equal(entry.AverageUnitCost))
	assert.True(t, entry.AverageStockCost.IsZero())
}

// Excluir SOLD não toca contadores.
func TestDelete_SoldNaoTocaContadores(t *testing.T) {
	uc, store := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	require.NoError(t, err)
	_, err = uc.Transition(context.Background(), created.ID, dto.TransitionRequest{Status: domainpurchase.StatusSold})
	require.NoError(t, err)

	before := store.stock[productID]
	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, before, store.stock[productID])
}

func TestDelete_CompraInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PointsReceived
// ──────────────────────────────────────────────────────────────────────────────

// O filtro de programa compara o último segmento do rótulo clube/loja,
// sem diferenciar maiúsculas.
func TestList_FiltraPorPrograma(t *testing.T) {
	uc, _ := buildUseCase()

	esfera := createRequest() // ClubAndStore: "CB/Esfera"
	_, err := uc.Create(context.Background(), "user-1", esfera)
	require.NoError(t, err)

	livelo := createRequest()
	livelo.ClubAndStore = "Livelo"
	_, err = uc.Create(context.Background(), "user-1", livelo)
	require.NoError(t, err)

	out, err := uc.List(context.Background(), repository.PurchaseFilter{Program: "esfera"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "CB/Esfera", out.Items[0].ClubAndStore)
}

func TestSetPointsReceived(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	out, err := uc.SetPointsReceived(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, out.PointsReceived)
	// Flag ortogonal: o status não muda.
	assert.Equal(t, domainpurchase.StatusPending, out.Status)
}

// O erro de store propaga como veio (sem retry nem sucesso padrão).
func TestTransition_ErroDeStorePropaga(t *testing.T) {
	storeErr := errors.New("conexão caiu")
	uc := apppurchase.NewUseCase(
		failingTxRunner{err: storeErr},
		&memProductRepo{products: map[string]entity.Product{}},
		&memPurchaseRepo{s: newMemStore()},
	)
	_, err := uc.Transition(context.Background(), "qualquer", dto.TransitionRequest{Status: domainpurchase.StatusDelivered})
	assert.ErrorIs(t, err, storeErr)
}

type failingTxRunner struct{ err error }

func (t failingTxRunner) Run(ctx context.Context, fn func(repository.PurchaseRepository, repository.StockRepository) error) error {
	return t.err
}
