package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus é o estado de uma venda.
type SaleStatus string

// Estados de venda.
const (
	SaleStatusPendente  SaleStatus = "pendente"
	SaleStatusPago      SaleStatus = "pago"
	SaleStatusEntregue  SaleStatus = "entregue"
	SaleStatusCancelado SaleStatus = "cancelado"
)

// saleTransitions é a tabela estática de transições permitidas.
// entregue e cancelado são terminais.
var saleTransitions = map[SaleStatus][]SaleStatus{
	SaleStatusPendente:  {SaleStatusPago, SaleStatusCancelado},
	SaleStatusPago:      {SaleStatusEntregue, SaleStatusCancelado},
	SaleStatusEntregue:  {},
	SaleStatusCancelado: {},
}

// CanTransition informa se a venda pode mudar do estado atual para target.
func (s SaleStatus) CanTransition(target SaleStatus) bool {
	for _, t := range saleTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Valid informa se o status pertence ao enum fechado.
func (s SaleStatus) Valid() bool {
	_, ok := saleTransitions[s]
	return ok
}

// Métodos de pagamento aceitos.
const (
	PaymentDinheiro  = "dinheiro"
	PaymentCartao    = "cartao"
	PaymentPix       = "pix"
	PaymentCrediario = "crediario"
)

// SaleItem é um item de venda (quantidades inteiras, preço congelado no momento da venda).
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal // valor absoluto por linha
	Total     decimal.Decimal // Quantity*UnitPrice - Discount
}

// Sale representa uma venda da ótica. A baixa de estoque acontece na criação
// (movimentos OUT) e o cancelamento devolve os itens (movimentos RETURN),
// sempre na mesma transação que muda o status.
type Sale struct {
	ID            string
	ClientID      string
	LocationID    string
	UserID        string // vendedor
	Status        SaleStatus
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
