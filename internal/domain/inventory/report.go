package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/domain/entity"
)

// LocationSummary é o acumulado de um local no agrupamento de snapshots.
type LocationSummary struct {
	Items      int             // quantidade de linhas (produto+local)
	TotalStock decimal.Decimal // soma das quantidades
	Value      decimal.Decimal // soma de quantidade * custo médio
}

// TotalStockValue soma quantidade * custo médio sobre a coleção.
// Coleção vazia vale zero. Leitura pura; não altera a entrada.
func TotalStockValue(snapshots []entity.Stock) decimal.Decimal {
	total := decimal.Zero
	for _, s := range snapshots {
		total = total.Add(s.Quantity.Mul(s.AverageCost))
	}
	return total
}

// CountLowStock conta snapshots com estoque menor ou igual ao mínimo
// (mesma fronteira inclusiva de Classify).
func CountLowStock(snapshots []entity.Stock) int {
	n := 0
	for _, s := range snapshots {
		if s.Quantity.LessThanOrEqual(s.MinStock) {
			n++
		}
	}
	return n
}

// GroupByLocation agrupa os snapshots por local, acumulando contagem de itens,
// estoque somado e valor. Locais ausentes da entrada não aparecem no resultado.
func GroupByLocation(snapshots []entity.Stock) map[string]LocationSummary {
	out := make(map[string]LocationSummary, len(snapshots))
	for _, s := range snapshots {
		acc := out[s.LocationID]
		acc.Items++
		acc.TotalStock = acc.TotalStock.Add(s.Quantity)
		acc.Value = acc.Value.Add(s.Quantity.Mul(s.AverageCost))
		out[s.LocationID] = acc
	}
	return out
}
