package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oticavisao/otica-api/internal/domain"
	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/inventory"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func snapshot(qty int64, cost float64) entity.Stock {
	return entity.Stock{
		ProductID:   "prod-1",
		LocationID:  "loja-1",
		Quantity:    decimal.NewFromInt(qty),
		AverageCost: decimal.NewFromFloat(cost),
	}
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// ValidateMovement
// ──────────────────────────────────────────────────────────────────────────────

// Quantidade zero, negativa ou fracionária é rejeitada para todo tipo de movimento.
func TestValidateMovement_QuantidadeInvalida(t *testing.T) {
	tipos := []entity.MovementType{
		entity.MovementTypeIn,
		entity.MovementTypeOut,
		entity.MovementTypeAdjustment,
		entity.MovementTypeTransfer,
		entity.MovementTypeReturn,
	}
	invalidas := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-3),
		decimal.NewFromFloat(2.5),
	}
	for _, typ := range tipos {
		for _, q := range invalidas {
			err := inventory.ValidateMovement(typ, q, dec(100))
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity,
				"tipo %s com quantidade %s deve ser rejeitado", typ, q)
		}
	}
}

// Saída maior que o disponível é ErrInsufficientStock.
func TestValidateMovement_EstoqueInsuficiente(t *testing.T) {
	err := inventory.ValidateMovement(entity.MovementTypeOut, dec(11), dec(10))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// saída igual ao disponível passa
	assert.NoError(t, inventory.ValidateMovement(entity.MovementTypeOut, dec(10), dec(10)))
}

func TestValidateMovement_EntradaSemprePassa(t *testing.T) {
	assert.NoError(t, inventory.ValidateMovement(entity.MovementTypeIn, dec(500), decimal.Zero))
	assert.NoError(t, inventory.ValidateMovement(entity.MovementTypeReturn, dec(1), decimal.Zero))
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement_EntradaSomaERecalculaCusto(t *testing.T) {
	s := snapshot(10, 100)
	cost := decimal.NewFromInt(50)

	out := inventory.ApplyMovement(s, entity.MovementTypeIn, dec(10), &cost, testNow)

	assert.True(t, out.Quantity.Equal(dec(20)), "10 + 10 = 20, obtido %s", out.Quantity)
	// (10*100 + 10*50) / 20 = 75
	assert.True(t, out.AverageCost.Equal(dec(75)), "custo médio esperado 75, obtido %s", out.AverageCost)
	assert.Equal(t, testNow, out.UpdatedAt)
}

func TestApplyMovement_EntradaSemCustoMantemCusto(t *testing.T) {
	s := snapshot(10, 100)
	out := inventory.ApplyMovement(s, entity.MovementTypeIn, dec(5), nil, testNow)

	assert.True(t, out.Quantity.Equal(dec(15)))
	assert.True(t, out.AverageCost.Equal(dec(100)), "sem unitCost o custo médio não muda")
}

func TestApplyMovement_DevolucaoSomaComoEntrada(t *testing.T) {
	s := snapshot(2, 80)
	out := inventory.ApplyMovement(s, entity.MovementTypeReturn, dec(1), nil, testNow)
	assert.True(t, out.Quantity.Equal(dec(3)))
	assert.True(t, out.AverageCost.Equal(dec(80)))
}

func TestApplyMovement_SaidaSubtrai(t *testing.T) {
	s := snapshot(10, 100)
	out := inventory.ApplyMovement(s, entity.MovementTypeOut, dec(4), nil, testNow)
	assert.True(t, out.Quantity.Equal(dec(6)))
	assert.True(t, out.AverageCost.Equal(dec(100)), "saída não altera o custo médio")
}

// Clamp defensivo: saída acima do disponível zera o estoque em vez de negativar,
// enquanto ValidateMovement para os mesmos valores reporta estoque insuficiente.
func TestApplyMovement_SaidaClampaEmZero(t *testing.T) {
	s := snapshot(3, 100)

	require.ErrorIs(t,
		inventory.ValidateMovement(entity.MovementTypeOut, dec(10), s.Quantity),
		domain.ErrInsufficientStock)

	out := inventory.ApplyMovement(s, entity.MovementTypeOut, dec(10), nil, testNow)
	assert.True(t, out.Quantity.IsZero(), "clamp em zero, obtido %s", out.Quantity)
}

// Ajuste é absoluto: a quantidade enviada vira o novo nível, não um delta.
func TestApplyMovement_AjusteEhAbsoluto(t *testing.T) {
	for _, prev := range []int64{0, 3, 500} {
		s := snapshot(prev, 42)
		out := inventory.ApplyMovement(s, entity.MovementTypeAdjustment, dec(7), nil, testNow)
		assert.True(t, out.Quantity.Equal(dec(7)),
			"ajuste para 7 partindo de %d deve resultar em 7", prev)
		assert.True(t, out.AverageCost.Equal(decimal.NewFromInt(42)),
			"ajuste não altera o custo médio")
	}
}

// Transferência debita a origem como uma saída (o crédito no destino é
// composto pela camada de aplicação).
func TestApplyMovement_TransferenciaDebitaOrigem(t *testing.T) {
	s := snapshot(10, 100)
	out := inventory.ApplyMovement(s, entity.MovementTypeTransfer, dec(4), nil, testNow)
	assert.True(t, out.Quantity.Equal(dec(6)))
}

func TestApplyMovement_TipoDesconhecidoEhNoOp(t *testing.T) {
	s := snapshot(10, 100)
	out := inventory.ApplyMovement(s, entity.MovementType("destruir"), dec(4), nil, testNow)
	assert.True(t, out.Quantity.Equal(dec(10)))
	assert.True(t, out.UpdatedAt.IsZero(), "no-op não toca em UpdatedAt")
}

// ApplyMovement não altera o snapshot recebido (passa por valor).
func TestApplyMovement_NaoMutaOriginal(t *testing.T) {
	s := snapshot(10, 100)
	_ = inventory.ApplyMovement(s, entity.MovementTypeOut, dec(5), nil, testNow)
	assert.True(t, s.Quantity.Equal(dec(10)), "snapshot original intacto")
}

// Não-negatividade: qualquer sequência de movimentos válidos mantém Quantity >= 0.
func TestApplyMovement_NuncaNegativa(t *testing.T) {
	s := entity.Stock{ProductID: "p", LocationID: "l"}
	cost := decimal.NewFromInt(10)

	seq := []struct {
		typ entity.MovementType
		qty int64
	}{
		{entity.MovementTypeIn, 5},
		{entity.MovementTypeOut, 3},
		{entity.MovementTypeOut, 9}, // clampa
		{entity.MovementTypeReturn, 2},
		{entity.MovementTypeAdjustment, 1},
		{entity.MovementTypeTransfer, 4}, // clampa
	}
	for _, m := range seq {
		s = inventory.ApplyMovement(s, m.typ, dec(m.qty), &cost, testNow)
		assert.False(t, s.Quantity.IsNegative(),
			"estoque negativo após %s %d", m.typ, m.qty)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AverageCost
// ──────────────────────────────────────────────────────────────────────────────

// Entrada com quantidade zero deixa o custo como está (identidade).
func TestAverageCost_QuantidadeZeroMantemCusto(t *testing.T) {
	got := inventory.AverageCost(dec(10), dec(100), decimal.Zero, dec(999))
	assert.True(t, got.Equal(dec(100)))
}

// Caso base: primeiro lote define o custo.
func TestAverageCost_PrimeiraEntradaDefineCusto(t *testing.T) {
	got := inventory.AverageCost(decimal.Zero, decimal.Zero, dec(10), dec(50))
	assert.True(t, got.Equal(dec(50)))
}

func TestAverageCost_PonderadoPorQuantidade(t *testing.T) {
	// (30*20 + 10*60) / 40 = 30
	got := inventory.AverageCost(dec(30), dec(20), dec(10), dec(60))
	assert.True(t, got.Equal(dec(30)), "esperado 30, obtido %s", got)
}

func TestAverageCost_DivisaoDecimalSemArredondamento(t *testing.T) {
	// (1*10 + 2*20) / 3 = 16.666...
	got := inventory.AverageCost(dec(1), dec(10), dec(2), dec(20))
	expected := dec(50).Div(dec(3))
	assert.True(t, got.Equal(expected), "esperado %s, obtido %s", expected, got)
}
