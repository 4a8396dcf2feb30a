package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/oticavisao/otica-api/internal/application/inventory"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (mesmo contrato dos adaptadores postgres)
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	rows map[string]entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]entity.Stock)}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func (r *fakeStockRepo) Get(productID, locationID string) (*entity.Stock, error) {
	if s, ok := r.rows[stockKey(productID, locationID)]; ok {
		cp := s
		return &cp, nil
	}
	// snapshot nasce zerado, como no adaptador postgres
	return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, locationID string) (*entity.Stock, error) {
	return r.Get(productID, locationID)
}

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	r.rows[stockKey(stock.ProductID, stock.LocationID)] = *stock
	return nil
}

func (r *fakeStockRepo) UpdateThresholds(productID, locationID string, minStock decimal.Decimal, maxStock *decimal.Decimal) error {
	s, _ := r.Get(productID, locationID)
	s.MinStock = minStock
	s.MaxStock = maxStock
	return r.Upsert(s)
}

func (r *fakeStockRepo) List(locationID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if locationID == "" || s.LocationID == locationID {
			cp := s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListAll() ([]*entity.Stock, error) { return r.List("", 0, 0) }

type fakeMovementRepo struct {
	created []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	r.created = append(r.created, mov)
	return nil
}

func (r *fakeMovementRepo) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.created, nil
}

type fakeTxRunner struct {
	movRepo   *fakeMovementRepo
	stockRepo *fakeStockRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.StockMovementRepository,
	repository.StockRepository,
) error) error {
	return fn(t.movRepo, t.stockRepo)
}

func (t *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.StockMovementRepository,
	repository.StockRepository,
	repository.SaleRepository,
) error) error {
	return fn(t.movRepo, t.stockRepo, nil)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error             { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                      { return nil }

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (r *fakeLocationRepo) Create(*entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) List() ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) Update(*entity.Location) error     { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc     *appinv.RegisterMovementUseCase
	stocks *fakeStockRepo
	movs   *fakeMovementRepo
}

func newFixture() *fixture {
	stocks := newFakeStockRepo()
	movs := &fakeMovementRepo{}
	tx := &fakeTxRunner{movRepo: movs, stockRepo: stocks}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SKU: "ARM-001", Name: "Armação Classic"},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		"loja":     {ID: "loja", Name: "Loja Centro", Type: entity.LocationTypeLoja},
		"deposito": {ID: "deposito", Name: "Depósito", Type: entity.LocationTypeDeposito},
	}}
	return &fixture{
		uc:     appinv.NewRegisterMovementUseCase(tx, products, locations),
		stocks: stocks,
		movs:   movs,
	}
}

func costPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (f *fixture) register(t *testing.T, input appinv.MovementInput) {
	t.Helper()
	require.NoError(t, f.uc.RegisterMovement(context.Background(), input))
}

func entrada(qty, cost int64) appinv.MovementInput {
	return appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeIn,
		Quantity:   decimal.NewFromInt(qty),
		UnitCost:   costPtr(cost),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaCriaSnapshotERecalculaCusto(t *testing.T) {
	f := newFixture()

	f.register(t, entrada(10, 100))
	f.register(t, entrada(10, 50))

	s, _ := f.stocks.Get("prod-1", "loja")
	assert.True(t, s.Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, s.AverageCost.Equal(decimal.NewFromInt(75)), "custo médio (10*100+10*50)/20")
	require.Len(t, f.movs.created, 2)
	assert.Equal(t, entity.MovementTypeIn, f.movs.created[0].Type)
	assert.True(t, f.movs.created[0].TotalCost.Equal(decimal.NewFromInt(1000)))
}

func TestRegisterMovement_SaidaInsuficienteNaoGravaNada(t *testing.T) {
	f := newFixture()
	f.register(t, entrada(5, 100))

	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeOut,
		Quantity:   decimal.NewFromInt(6),
		Reason:     "venda balcão",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	s, _ := f.stocks.Get("prod-1", "loja")
	assert.True(t, s.Quantity.Equal(decimal.NewFromInt(5)), "estoque intacto após rejeição")
	assert.Len(t, f.movs.created, 1, "movimento rejeitado não entra no livro")
}

func TestRegisterMovement_SaidaExigeMotivo(t *testing.T) {
	f := newFixture()
	f.register(t, entrada(5, 100))

	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeOut,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_AjusteEhAbsoluto(t *testing.T) {
	f := newFixture()
	f.register(t, entrada(50, 10))

	f.register(t, appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeAdjustment,
		Quantity:   decimal.NewFromInt(7),
		Reason:     "contagem física",
	})

	s, _ := f.stocks.Get("prod-1", "loja")
	assert.True(t, s.Quantity.Equal(decimal.NewFromInt(7)), "ajuste define o nível absoluto")
	assert.True(t, s.AverageCost.Equal(decimal.NewFromInt(10)), "ajuste não mexe no custo")
}

func TestRegisterMovement_TransferenciaDebitaECreditaComMesmoTxID(t *testing.T) {
	f := newFixture()
	f.register(t, entrada(10, 100))

	f.register(t, appinv.MovementInput{
		UserID:         "user-1",
		ProductID:      "prod-1",
		FromLocationID: "loja",
		ToLocationID:   "deposito",
		Type:           entity.MovementTypeTransfer,
		Quantity:       decimal.NewFromInt(4),
		Reason:         "remanejamento vitrine",
	})

	origin, _ := f.stocks.Get("prod-1", "loja")
	dest, _ := f.stocks.Get("prod-1", "deposito")
	assert.True(t, origin.Quantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, dest.Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, dest.AverageCost.Equal(decimal.NewFromInt(100)), "destino herda o custo médio da origem")

	require.Len(t, f.movs.created, 3) // entrada + dois lados da transferência
	saida, chegada := f.movs.created[1], f.movs.created[2]
	assert.Equal(t, saida.TransactionID, chegada.TransactionID)
	assert.True(t, saida.Quantity.IsNegative())
	assert.True(t, chegada.Quantity.Equal(decimal.NewFromInt(4)))
}

func TestRegisterMovement_TransferenciaParaMesmoLocalFalha(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:         "user-1",
		ProductID:      "prod-1",
		FromLocationID: "loja",
		ToLocationID:   "loja",
		Type:           entity.MovementTypeTransfer,
		Quantity:       decimal.NewFromInt(1),
		Reason:         "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_EntradaSemCustoFalha(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeIn,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProdutoInexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "fantasma",
		LocationID: "loja",
		Type:       entity.MovementTypeIn,
		Quantity:   decimal.NewFromInt(1),
		UnitCost:   costPtr(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_TipoForaDoEnum(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementType("explodir"),
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_DevolucaoSomaAoEstoque(t *testing.T) {
	f := newFixture()
	f.register(t, entrada(10, 100))
	f.register(t, appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeOut,
		Quantity:   decimal.NewFromInt(3),
		Reason:     "venda",
	})

	f.register(t, appinv.MovementInput{
		UserID:     "user-1",
		ProductID:  "prod-1",
		LocationID: "loja",
		Type:       entity.MovementTypeReturn,
		Quantity:   decimal.NewFromInt(1),
	})

	s, _ := f.stocks.Get("prod-1", "loja")
	assert.True(t, s.Quantity.Equal(decimal.NewFromInt(8)))
	last := f.movs.created[len(f.movs.created)-1]
	assert.Equal(t, entity.MovementTypeReturn, last.Type)
	assert.False(t, last.CreatedAt.After(time.Now()))
}
