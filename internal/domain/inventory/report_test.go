package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/inventory"
)

func stockLine(location string, qty, cost, min int64) entity.Stock {
	return entity.Stock{
		ProductID:   "p-" + location,
		LocationID:  location,
		Quantity:    decimal.NewFromInt(qty),
		AverageCost: decimal.NewFromInt(cost),
		MinStock:    decimal.NewFromInt(min),
	}
}

// Cenário concreto: 10*100 + 3*80 + 25*50 + 0*120 = 2490; dois itens em nível baixo.
func TestReporter_CenarioConcreto(t *testing.T) {
	snapshots := []entity.Stock{
		stockLine("loja", 10, 100, 5),
		stockLine("loja", 3, 80, 5),
		stockLine("deposito", 25, 50, 10),
		stockLine("deposito", 0, 120, 2),
	}

	total := inventory.TotalStockValue(snapshots)
	assert.True(t, total.Equal(decimal.NewFromInt(2490)), "esperado 2490, obtido %s", total)

	assert.Equal(t, 2, inventory.CountLowStock(snapshots),
		"3<=5 e 0<=2 contam como estoque baixo")
}

func TestTotalStockValue_ColecaoVazia(t *testing.T) {
	assert.True(t, inventory.TotalStockValue(nil).IsZero())
	assert.True(t, inventory.TotalStockValue([]entity.Stock{}).IsZero())
}

// Igual ao mínimo conta como baixo (mesma fronteira inclusiva de Classify).
func TestCountLowStock_FronteiraInclusiva(t *testing.T) {
	snapshots := []entity.Stock{
		stockLine("loja", 5, 10, 5), // igual ao mínimo
		stockLine("loja", 6, 10, 5), // acima
	}
	assert.Equal(t, 1, inventory.CountLowStock(snapshots))
}

func TestGroupByLocation_Acumula(t *testing.T) {
	snapshots := []entity.Stock{
		stockLine("loja", 10, 100, 0),
		stockLine("loja", 3, 80, 0),
		stockLine("deposito", 25, 50, 0),
	}

	groups := inventory.GroupByLocation(snapshots)
	require.Len(t, groups, 2, "locais ausentes não aparecem no resultado")

	loja := groups["loja"]
	assert.Equal(t, 2, loja.Items)
	assert.True(t, loja.TotalStock.Equal(decimal.NewFromInt(13)))
	assert.True(t, loja.Value.Equal(decimal.NewFromInt(1240)), "10*100 + 3*80")

	deposito := groups["deposito"]
	assert.Equal(t, 1, deposito.Items)
	assert.True(t, deposito.Value.Equal(decimal.NewFromInt(1250)))
}

func TestGroupByLocation_Vazio(t *testing.T) {
	assert.Empty(t, inventory.GroupByLocation(nil))
}

// As agregações são leituras puras: não mutam a entrada e são idempotentes.
func TestReporter_PuroEIdempotente(t *testing.T) {
	snapshots := []entity.Stock{
		stockLine("loja", 10, 100, 5),
		stockLine("deposito", 0, 120, 2),
	}

	v1 := inventory.TotalStockValue(snapshots)
	v2 := inventory.TotalStockValue(snapshots)
	assert.True(t, v1.Equal(v2))

	assert.Equal(t, inventory.CountLowStock(snapshots), inventory.CountLowStock(snapshots))

	assert.True(t, snapshots[0].Quantity.Equal(decimal.NewFromInt(10)), "entrada intacta")
	assert.True(t, snapshots[1].AverageCost.Equal(decimal.NewFromInt(120)))
}
