package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/inventory"
)

func maxPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestClassify_Fronteiras(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		min     int64
		max     *decimal.Decimal
		want    inventory.StockStatus
	}{
		{"zerado", 0, 5, maxPtr(50), inventory.StatusOutOfStock},
		{"igual ao mínimo é baixo", 5, 5, maxPtr(50), inventory.StatusLowStock},
		{"abaixo do mínimo", 3, 5, maxPtr(50), inventory.StatusLowStock},
		{"faixa normal", 20, 5, maxPtr(50), inventory.StatusNormal},
		{"igual ao máximo é excedente", 50, 5, maxPtr(50), inventory.StatusOverStock},
		{"acima do máximo", 60, 5, maxPtr(50), inventory.StatusOverStock},
		{"sem máximo nunca é excedente", 1000, 5, nil, inventory.StatusNormal},
		{"mínimo zero e estoque positivo", 1, 0, nil, inventory.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := inventory.Classify(decimal.NewFromInt(tc.current), decimal.NewFromInt(tc.min), tc.max)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Esgotado tem prioridade sobre qualquer outra condição, mesmo com limiares estranhos.
func TestClassify_EsgotadoTemPrioridade(t *testing.T) {
	zero := decimal.Zero
	got := inventory.Classify(decimal.Zero, decimal.NewFromInt(-10), &zero)
	assert.Equal(t, inventory.StatusOutOfStock, got)
}

// Função pura: duas chamadas com a mesma entrada produzem o mesmo status.
func TestClassify_Idempotente(t *testing.T) {
	cur, min := decimal.NewFromInt(7), decimal.NewFromInt(5)
	max := maxPtr(50)
	assert.Equal(t, inventory.Classify(cur, min, max), inventory.Classify(cur, min, max))
}

func TestClassifySnapshot_DelegaParaClassify(t *testing.T) {
	s := entity.Stock{
		Quantity: decimal.NewFromInt(5),
		MinStock: decimal.NewFromInt(5),
		MaxStock: maxPtr(50),
	}
	assert.Equal(t, inventory.StatusLowStock, inventory.ClassifySnapshot(s))
}
