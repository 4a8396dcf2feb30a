// Package inventory contém o motor do livro de estoque (serviço de domínio):
// funções puras que validam e aplicam movimentos sobre um snapshot, calculam
// o custo médio ponderado, classificam alertas e agregam relatórios.
//
// O motor não faz I/O: a serialização de movimentos concorrentes sobre o mesmo
// (produto, local) é responsabilidade da camada de persistência (SELECT FOR
// UPDATE dentro de transação).
package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// ValidateMovement valida um movimento contra o estoque atual antes de aplicá-lo.
// Retorna ErrInvalidQuantity se a quantidade não for um inteiro positivo e
// ErrInsufficientStock se uma saída pedir mais do que o disponível.
// Predicado puro; não altera nada.
func ValidateMovement(typ entity.MovementType, quantity, currentStock decimal.Decimal) error {
	if !quantity.IsInteger() || quantity.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidQuantity
	}
	if typ == entity.MovementTypeOut && quantity.GreaterThan(currentStock) {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ApplyMovement aplica um movimento a um snapshot e devolve o novo snapshot.
// Função pura: recebe o snapshot por valor e nunca altera o original.
//
//   - in/return: soma a quantidade; com unitCost recalcula o custo médio.
//   - out: subtrai com clamp em zero. O clamp é invariante defensivo; a guarda
//     primária é ValidateMovement, que já deve ter rejeitado a sobrevenda.
//   - adjustment: a quantidade enviada é o novo nível absoluto (contagem
//     física), não um delta. O custo médio não muda.
//   - transfer: débito no local de origem, idêntico a out. O crédito no
//     destino é composto pela camada de aplicação na mesma transação.
//   - tipo desconhecido: snapshot inalterado (inalcançável com o enum fechado;
//     o chamador valida o tipo antes).
func ApplyMovement(s entity.Stock, typ entity.MovementType, quantity decimal.Decimal, unitCost *decimal.Decimal, now time.Time) entity.Stock {
	switch typ {
	case entity.MovementTypeIn, entity.MovementTypeReturn:
		if unitCost != nil {
			s.AverageCost = AverageCost(s.Quantity, s.AverageCost, quantity, *unitCost)
		}
		s.Quantity = s.Quantity.Add(quantity)
	case entity.MovementTypeOut, entity.MovementTypeTransfer:
		s.Quantity = s.Quantity.Sub(quantity)
		if s.Quantity.IsNegative() {
			s.Quantity = decimal.Zero
		}
	case entity.MovementTypeAdjustment:
		s.Quantity = quantity
	default:
		return s
	}
	s.UpdatedAt = now
	return s
}

// AverageCost calcula o custo médio ponderado após uma entrada:
//
//	novo = (estoqueAtual*custoAtual + qtdEntrada*custoEntrada) / (estoqueAtual + qtdEntrada)
//
// Entrada com quantidade zero ou negativa não altera o custo. Divisão em
// decimal, sem arredondamento nesta camada.
func AverageCost(currentStock, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	if inQty.LessThanOrEqual(decimal.Zero) {
		return currentCost
	}
	total := currentStock.Add(inQty)
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	value := currentStock.Mul(currentCost).Add(inQty.Mul(inCost))
	return value.Div(total)
}
