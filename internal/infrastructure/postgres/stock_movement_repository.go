package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo adaptador do livro de movimentos. Append-only: a tabela
// só recebe INSERT e SELECT, nunca UPDATE ou DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insere um movimento no livro.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, transaction_id, product_id, location_id, type, quantity, unit_cost, total_cost, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.TransactionID, mov.ProductID, mov.LocationID, string(mov.Type),
		mov.Quantity, mov.UnitCost, mov.TotalCost, mov.Reason, mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List consulta o histórico com filtros opcionais, do mais recente ao mais antigo.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, product_id, location_id, type, quantity, unit_cost, total_cost, reason, created_at, created_by
		FROM stock_movements WHERE 1=1`
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		query += " AND product_id = $" + strconv.Itoa(len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		query += " AND location_id = $" + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		query += " AND type = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at DESC"
	args = append(args, filter.Limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.LocationID, &m.Type,
			&m.Quantity, &m.UnitCost, &m.TotalCost, &m.Reason, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
