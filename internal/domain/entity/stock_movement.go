package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType é o tipo fechado de movimento de estoque.
type MovementType string

// Tipos de movimento de estoque.
const (
	MovementTypeIn         MovementType = "in"         // entrada (compra/recebimento)
	MovementTypeOut        MovementType = "out"        // saída (venda/perda)
	MovementTypeAdjustment MovementType = "adjustment" // ajuste absoluto (contagem física)
	MovementTypeTransfer   MovementType = "transfer"   // transferência entre locais
	MovementTypeReturn     MovementType = "return"     // devolução de cliente
)

// Valid informa se o tipo pertence ao enum fechado.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment, MovementTypeTransfer, MovementTypeReturn:
		return true
	}
	return false
}

// RequiresReason informa se o tipo exige justificativa na entrada.
// Saídas, ajustes e transferências precisam de motivo auditável.
func (t MovementType) RequiresReason() bool {
	switch t {
	case MovementTypeOut, MovementTypeAdjustment, MovementTypeTransfer:
		return true
	}
	return false
}

// StockMovement representa um movimento de estoque (entrada, saída, ajuste,
// transferência ou devolução). Registro imutável: correções são novos
// movimentos, nunca edições (livro append-only).
type StockMovement struct {
	ID            string
	TransactionID string // agrupa os dois lados de uma transferência ou os itens de uma venda
	ProductID     string
	LocationID    string
	Type          MovementType
	Quantity      decimal.Decimal // positivo entrada/devolução, negativo saída; absoluto em ajuste
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	Reason        string
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
