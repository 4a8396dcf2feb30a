package entity

import "time"

// Client representa um cliente da ótica.
type Client struct {
	ID        string
	Name      string
	CPF       string // somente dígitos após normalização
	Email     string
	Phone     string
	BirthDate *time.Time
	Address   string
	City      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
