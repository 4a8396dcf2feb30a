package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// StockStatus é o rótulo de alerta derivado de um snapshot.
type StockStatus string

// Status possíveis de um snapshot de estoque.
const (
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusNormal     StockStatus = "normal"
	StatusOverStock  StockStatus = "over_stock"
)

// Classify deriva o status de alerta a partir do estoque atual e dos limiares.
// A ordem das checagens importa: esgotado tem prioridade sobre tudo; as
// fronteiras são inclusivas (igual ao mínimo é baixo, igual ao máximo é
// excedente). Função pura e total: sempre devolve exatamente um status.
func Classify(currentStock, minStock decimal.Decimal, maxStock *decimal.Decimal) StockStatus {
	switch {
	case currentStock.LessThanOrEqual(decimal.Zero):
		return StatusOutOfStock
	case currentStock.LessThanOrEqual(minStock):
		return StatusLowStock
	case maxStock != nil && currentStock.GreaterThanOrEqual(*maxStock):
		return StatusOverStock
	default:
		return StatusNormal
	}
}

// ClassifySnapshot é o atalho para classificar um snapshot inteiro.
func ClassifySnapshot(s entity.Stock) StockStatus {
	return Classify(s.Quantity, s.MinStock, s.MaxStock)
}
