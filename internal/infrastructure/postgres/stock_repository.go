package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (aceita pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `product_id, location_id, quantity, average_cost, min_stock, max_stock, updated_at`

// Get obtém o snapshot de um produto em um local. Linha inexistente vira
// snapshot zerado: o estoque nasce no primeiro movimento de entrada.
func (r *StockRepo) Get(productID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE product_id = $1 AND location_id = $2`
	return r.scanOne(query, productID, locationID)
}

// GetForUpdate obtém o snapshot bloqueando a linha (SELECT FOR UPDATE);
// só faz sentido dentro de uma transação.
func (r *StockRepo) GetForUpdate(productID, locationID string) (*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	return r.scanOne(query, productID, locationID)
}

func (r *StockRepo) scanOne(query, productID, locationID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.AverageCost, &s.MinStock, &s.MaxStock, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert insere ou atualiza o snapshot (por produto e local). Não toca nos
// limiares quando a linha já existe: eles são geridos por UpdateThresholds.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, average_cost, min_stock, max_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, average_cost = EXCLUDED.average_cost, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.LocationID, stock.Quantity, stock.AverageCost,
		stock.MinStock, stock.MaxStock, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// UpdateThresholds define os limiares de alerta de um produto em um local.
// Cria a linha zerada se ainda não existir (é válido configurar alerta antes
// da primeira entrada).
func (r *StockRepo) UpdateThresholds(productID, locationID string, minStock decimal.Decimal, maxStock *decimal.Decimal) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, average_cost, min_stock, max_stock, updated_at)
		VALUES ($1, $2, 0, 0, $3, $4, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET min_stock = EXCLUDED.min_stock, max_stock = EXCLUDED.max_stock, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, locationID, minStock, maxStock)
	if err != nil {
		return fmt.Errorf("update thresholds: %w", err)
	}
	return nil
}

// List lista os snapshots de um local com paginação.
func (r *StockRepo) List(locationID string, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock WHERE location_id = $1
		ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, locationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return scanStocks(rows)
}

// ListAll lista todos os snapshots (relatórios e dashboard).
func (r *StockRepo) ListAll() ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock ORDER BY location_id, product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all stock: %w", err)
	}
	return scanStocks(rows)
}

func scanStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.LocationID, &s.Quantity, &s.AverageCost,
			&s.MinStock, &s.MaxStock, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
