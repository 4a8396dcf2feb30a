package entity

import "time"

// Tipos de local de estoque.
const (
	LocationTypeLoja     = "loja"
	LocationTypeDeposito = "deposito"
)

// Location representa um local físico onde há estoque (loja ou depósito).
type Location struct {
	ID        string
	Name      string
	Type      string // loja, deposito
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
