package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProduct é uma linha do ranking de produtos mais vendidos.
type TopProduct struct {
	ProductID string
	SKU       string
	Name      string
	Quantity  decimal.Decimal
	Revenue   decimal.Decimal
}

// AnalyticsRepository é a porta das consultas read-only de relatórios.
type AnalyticsRepository interface {
	// GetSalesMetrics devolve receita e custo das vendas não canceladas no período.
	GetSalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
	CountClients(ctx context.Context) (int, error)
}
