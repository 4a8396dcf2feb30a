package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa o snapshot de estoque de um produto em um local
// (projeção mutável do livro de movimentos, uma linha por produto+local).
// Invariantes: Quantity >= 0 sempre; AverageCost só é zero quando Quantity é zero
// ou quando ainda não houve entrada com custo.
type Stock struct {
	ProductID   string
	LocationID  string
	Quantity    decimal.Decimal
	AverageCost decimal.Decimal  // custo médio ponderado
	MinStock    decimal.Decimal  // limiar de estoque baixo (zero = sem alerta de mínimo)
	MaxStock    *decimal.Decimal // limiar de excedente (nil = sem teto)
	UpdatedAt   time.Time
}
