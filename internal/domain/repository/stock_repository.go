package repository

import (
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// StockRepository é a porta de persistência dos snapshots de estoque.
// Implementações devolvem um snapshot zerado quando a linha ainda não existe
// (o snapshot nasce implicitamente no primeiro movimento de entrada).
type StockRepository interface {
	Get(productID, locationID string) (*entity.Stock, error)
	// GetForUpdate obtém o snapshot bloqueando a linha (SELECT FOR UPDATE);
	// só faz sentido dentro de uma transação.
	GetForUpdate(productID, locationID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	UpdateThresholds(productID, locationID string, minStock decimal.Decimal, maxStock *decimal.Decimal) error
	List(locationID string, limit, offset int) ([]*entity.Stock, error)
	ListAll() ([]*entity.Stock, error)
}
