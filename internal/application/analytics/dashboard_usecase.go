package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/application/dto"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	domaininv "github.com/oticavisao/otica-api/internal/domain/inventory"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

// DashboardUseCase monta o resumo da tela inicial: vendas do dia e do mês,
// mais vendidos e a situação consolidada do estoque. As consultas independem
// entre si e rodam em paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockRepo     repository.StockRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, stockRepo repository.StockRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, stockRepo: stockRepo}
}

type salesMetrics struct {
	revenue decimal.Decimal
	margin  decimal.Decimal
	err     error
}

type topProductsResult struct {
	items []repository.TopProduct
	err   error
}

type stockResult struct {
	value      decimal.Decimal
	lowCount   int
	byLocation map[string]domaininv.LocationSummary
	err        error
}

type clientCountResult struct {
	count int
	err   error
}

// GetSummary executa as consultas do dashboard em paralelo e agrega o resultado.
// Valores monetários saem arredondados a 2 casas nesta camada; o motor de
// domínio trabalha sem arredondar.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayCh := make(chan salesMetrics, 1)
	monthCh := make(chan salesMetrics, 1)
	topCh := make(chan topProductsResult, 1)
	stockCh := make(chan stockResult, 1)
	clientCh := make(chan clientCountResult, 1)

	go uc.fetchSales(ctx, dayStart, now, todayCh)
	go uc.fetchSales(ctx, monthStart, now, monthCh)
	go func() {
		items, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, now, 5)
		topCh <- topProductsResult{items: items, err: err}
	}()
	go uc.fetchStock(stockCh)
	go func() {
		count, err := uc.analyticsRepo.CountClients(ctx)
		clientCh <- clientCountResult{count: count, err: err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	stock := <-stockCh
	clients := <-clientCh

	for _, err := range []error{today.err, month.err, top.err, stock.err, clients.err} {
		if err != nil {
			return nil, err
		}
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:    today.revenue.Round(2),
		TodayMargin:   today.margin.Round(2),
		MonthlySales:  month.revenue.Round(2),
		MonthlyMargin: month.margin.Round(2),
		StockValue:    stock.value.Round(2),
		LowStockCount: stock.lowCount,
		ClientCount:   clients.count,
	}
	for _, p := range top.items {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue.Round(2),
		})
	}
	for locationID, acc := range stock.byLocation {
		summary.StockByLocation = append(summary.StockByLocation, dto.LocationSummaryDTO{
			LocationID: locationID,
			Items:      acc.Items,
			TotalStock: acc.TotalStock,
			Value:      acc.Value.Round(2),
		})
	}
	// Ordem estável na resposta (map não garante ordem).
	sort.Slice(summary.StockByLocation, func(i, j int) bool {
		return summary.StockByLocation[i].LocationID < summary.StockByLocation[j].LocationID
	})
	return summary, nil
}

func (uc *DashboardUseCase) fetchSales(ctx context.Context, from, to time.Time, ch chan<- salesMetrics) {
	revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, from, to)
	ch <- salesMetrics{revenue: revenue, margin: revenue.Sub(cost), err: err}
}

func (uc *DashboardUseCase) fetchStock(ch chan<- stockResult) {
	list, err := uc.stockRepo.ListAll()
	if err != nil {
		ch <- stockResult{err: err}
		return
	}
	snapshots := make([]entity.Stock, 0, len(list))
	for _, s := range list {
		snapshots = append(snapshots, *s)
	}
	ch <- stockResult{
		value:      domaininv.TotalStockValue(snapshots),
		lowCount:   domaininv.CountLowStock(snapshots),
		byLocation: domaininv.GroupByLocation(snapshots),
	}
}
