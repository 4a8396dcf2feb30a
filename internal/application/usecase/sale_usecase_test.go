package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/application/inventory"
	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// Fakes em memória para exercitar o fluxo venda↔estoque sem banco.

type memStockRepo struct {
	stocks map[string]*entity.Stock
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{stocks: map[string]*entity.Stock{}}
}

func stockKey(productID, locationID string) string {
	return productID + "|" + locationID
}

func (r *memStockRepo) Get(productID, locationID string) (*entity.Stock, error) {
	return r.GetForUpdate(productID, locationID)
}

func (r *memStockRepo) GetForUpdate(productID, locationID string) (*entity.Stock, error) {
	if s, ok := r.stocks[stockKey(productID, locationID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, LocationID: locationID}, nil
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.stocks[stockKey(stock.ProductID, stock.LocationID)] = &cp
	return nil
}

func (r *memStockRepo) UpdateThresholds(productID, locationID string, minStock decimal.Decimal, maxStock *decimal.Decimal) error {
	s, ok := r.stocks[stockKey(productID, locationID)]
	if !ok {
		return domain.ErrNotFound
	}
	s.MinStock = minStock
	s.MaxStock = maxStock
	return nil
}

func (r *memStockRepo) List(locationID string, limit, offset int) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		if s.LocationID == locationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memStockRepo) ListAll() ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		out = append(out, s)
	}
	return out, nil
}

type memMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(mov *entity.StockMovement) error {
	r.movements = append(r.movements, mov)
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if s, ok := r.sales[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSaleRepo) UpdateStatus(id string, status entity.SaleStatus) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSaleRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (r *memClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *memClientRepo) GetByCPF(cpf string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) Search(term string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if strings.Contains(NormalizeTerm(c.Name), term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type memLocationRepo struct {
	locations map[string]*entity.Location
}

func (r *memLocationRepo) Create(l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}

func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}

func (r *memLocationRepo) Update(l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}

func (r *memLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		out = append(out, l)
	}
	return out, nil
}

// memTxRunner simula a transação: em caso de erro descarta as escritas,
// restaurando o estado anterior dos fakes.
type memTxRunner struct {
	movRepo   *memMovementRepo
	stockRepo *memStockRepo
	saleRepo  *memSaleRepo
}

func (tx *memTxRunner) snapshot() (map[string]*entity.Stock, []*entity.StockMovement, map[string]*entity.Sale) {
	stocks := map[string]*entity.Stock{}
	for k, v := range tx.stockRepo.stocks {
		cp := *v
		stocks[k] = &cp
	}
	movs := append([]*entity.StockMovement(nil), tx.movRepo.movements...)
	sales := map[string]*entity.Sale{}
	for k, v := range tx.saleRepo.sales {
		cp := *v
		sales[k] = &cp
	}
	return stocks, movs, sales
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	stocks, movs, sales := tx.snapshot()
	if err := fn(tx.movRepo, tx.stockRepo); err != nil {
		tx.stockRepo.stocks = stocks
		tx.movRepo.movements = movs
		tx.saleRepo.sales = sales
		return err
	}
	return nil
}

func (tx *memTxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	stocks, movs, sales := tx.snapshot()
	if err := fn(tx.movRepo, tx.stockRepo, tx.saleRepo); err != nil {
		tx.stockRepo.stocks = stocks
		tx.movRepo.movements = movs
		tx.saleRepo.sales = sales
		return err
	}
	return nil
}

type saleFixture struct {
	uc        *SaleUseCase
	stockRepo *memStockRepo
	movRepo   *memMovementRepo
	saleRepo  *memSaleRepo
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	stockRepo := newMemStockRepo()
	movRepo := &memMovementRepo{}
	saleRepo := newMemSaleRepo()
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SKU: "AR-001", Name: "Armação Aviador", Category: entity.CategoryArmacao, Price: decimal.NewFromInt(350)},
	}}
	clientRepo := &memClientRepo{clients: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", Name: "João da Silva"},
	}}
	locationRepo := &memLocationRepo{locations: map[string]*entity.Location{
		"loja": {ID: "loja", Name: "Loja Centro", Type: entity.LocationTypeLoja},
	}}
	tx := &memTxRunner{movRepo: movRepo, stockRepo: stockRepo, saleRepo: saleRepo}
	movementUC := inventory.NewRegisterMovementUseCase(tx, productRepo, locationRepo)
	uc := NewSaleUseCase(tx, movementUC, saleRepo, productRepo, clientRepo, locationRepo)
	return &saleFixture{uc: uc, stockRepo: stockRepo, movRepo: movRepo, saleRepo: saleRepo}
}

func (f *saleFixture) seedStock(qty, cost int64) {
	f.stockRepo.stocks[stockKey("prod-1", "loja")] = &entity.Stock{
		ProductID:   "prod-1",
		LocationID:  "loja",
		Quantity:    decimal.NewFromInt(qty),
		AverageCost: decimal.NewFromInt(cost),
	}
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	f := newSaleFixture(t)
	f.seedStock(10, 120)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:   "cli-1",
		LocationID: "loja",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(2), Discount: decimal.NewFromInt(50)},
		},
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, string(entity.SaleStatusPendente), resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(700)), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(650)), "total %s", resp.Total)

	stock, _ := f.stockRepo.Get("prod-1", "loja")
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(8)), "estoque %s", stock.Quantity)

	require.Len(t, f.movRepo.movements, 1)
	mov := f.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeOut, mov.Type)
	assert.Equal(t, resp.ID, mov.TransactionID)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(-2)))
	assert.True(t, mov.UnitCost.Equal(decimal.NewFromInt(120)))
}

func TestCreateSaleInsufficientStockRollsBack(t *testing.T) {
	f := newSaleFixture(t)
	f.seedStock(1, 120)

	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:   "cli-1",
		LocationID: "loja",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(5)},
		},
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada mudou: nem venda, nem estoque, nem livro.
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.movRepo.movements)
	stock, _ := f.stockRepo.Get("prod-1", "loja")
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(1)))
}

func TestCreateSaleValidation(t *testing.T) {
	f := newSaleFixture(t)
	f.seedStock(10, 120)

	_, err := f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:      "cli-1",
		LocationID:    "loja",
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: decimal.NewFromFloat(1.5)}},
		PaymentMethod: entity.PaymentPix,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:      "cli-1",
		LocationID:    "loja",
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:      "nao-existe",
		LocationID:    "loja",
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentPix,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelSaleReturnsStock(t *testing.T) {
	f := newSaleFixture(t)
	f.seedStock(10, 120)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:   "cli-1",
		LocationID: "loja",
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-1", Quantity: decimal.NewFromInt(3)},
		},
		PaymentMethod: entity.PaymentCartao,
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateStatus(context.Background(), resp.ID, "user-1", entity.SaleStatusCancelado)
	require.NoError(t, err)
	assert.Equal(t, string(entity.SaleStatusCancelado), updated.Status)

	stock, _ := f.stockRepo.Get("prod-1", "loja")
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(10)), "estoque %s", stock.Quantity)

	require.Len(t, f.movRepo.movements, 2)
	assert.Equal(t, entity.MovementTypeReturn, f.movRepo.movements[1].Type)
	assert.Equal(t, resp.ID, f.movRepo.movements[1].TransactionID)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	f := newSaleFixture(t)
	f.seedStock(10, 120)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreateSaleRequest{
		ClientID:      "cli-1",
		LocationID:    "loja",
		Items:         []dto.SaleItemRequest{{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)

	// pendente → entregue não é permitido.
	_, err = f.uc.UpdateStatus(context.Background(), resp.ID, "user-1", entity.SaleStatusEntregue)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.UpdateStatus(context.Background(), resp.ID, "user-1", entity.SaleStatusPago)
	require.NoError(t, err)
	_, err = f.uc.UpdateStatus(context.Background(), resp.ID, "user-1", entity.SaleStatusEntregue)
	require.NoError(t, err)

	// entregue é terminal.
	_, err = f.uc.UpdateStatus(context.Background(), resp.ID, "user-1", entity.SaleStatusCancelado)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
