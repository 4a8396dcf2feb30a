package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para o dashboard. Usa o pool direto:
// relatório não participa de transação.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de relatórios.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devolve receita e custo das vendas não canceladas do período.
// O custo vem do livro de movimentos: as saídas da venda carregam o custo
// médio do momento da baixa (total_cost é negativo em OUT, daí o sinal).
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error) {
	const revenueQuery = `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE status <> 'cancelado' AND created_at >= $1 AND created_at < $2`
	err = r.pool.QueryRow(ctx, revenueQuery, from, to).Scan(&revenue)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics receita: %w", err)
	}

	const costQuery = `
		SELECT COALESCE(SUM(-m.total_cost), 0)
		FROM stock_movements m
		JOIN sales s ON s.id = m.transaction_id
		WHERE m.type = 'out' AND s.status <> 'cancelado'
		  AND s.created_at >= $1 AND s.created_at < $2`
	err = r.pool.QueryRow(ctx, costQuery, from, to).Scan(&cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics custo: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devolve os `limit` produtos com maior receita no período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProduct, error) {
	const query = `
		SELECT
		    p.id                    AS product_id,
		    p.sku,
		    p.name,
		    SUM(i.quantity)         AS quantity_sold,
		    SUM(i.total)            AS revenue
		FROM sale_items i
		JOIN sales s    ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		WHERE s.status <> 'cancelado'
		  AND s.created_at >= $1 AND s.created_at < $2
		GROUP BY p.id, p.sku, p.name
		ORDER BY revenue DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProduct
	for rows.Next() {
		var row repository.TopProduct
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Quantity, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountClients conta os clientes cadastrados.
func (r *AnalyticsRepo) CountClients(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountClients: %w", err)
	}
	return count, nil
}
