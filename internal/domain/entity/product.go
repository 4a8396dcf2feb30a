package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorias de produto da ótica.
const (
	CategoryArmacao   = "armacao"
	CategoryLente     = "lente"
	CategoryOculosSol = "oculos_sol"
	CategoryAcessorio = "acessorio"
)

// ValidCategory informa se a categoria pertence ao conjunto fechado.
func ValidCategory(c string) bool {
	switch c {
	case CategoryArmacao, CategoryLente, CategoryOculosSol, CategoryAcessorio:
		return true
	}
	return false
}

// Product representa um produto (SKU) da ótica.
// O custo médio e a quantidade são mantidos por local em Stock, via movimentos.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Brand       string
	Category    string          // armacao, lente, oculos_sol, acessorio
	Price       decimal.Decimal // preço de venda
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
