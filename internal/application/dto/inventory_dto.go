package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para in/out/adjustment/return: product_id, location_id, type, quantity.
// Para transfer: product_id, from_location_id, to_location_id, quantity.
// unit_cost é obrigatório em in; reason em out, adjustment e transfer.
type RegisterMovementRequest struct {
	ProductID      string           `json:"product_id"`
	LocationID     string           `json:"location_id,omitempty"`
	FromLocationID string           `json:"from_location_id,omitempty"`
	ToLocationID   string           `json:"to_location_id,omitempty"`
	Type           string           `json:"type"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason         string           `json:"reason,omitempty"`
}

// AdjustStockRequest body para POST /api/inventory/adjust.
// new_quantity é o novo nível absoluto, não um delta.
type AdjustStockRequest struct {
	ProductID   string          `json:"product_id"`
	LocationID  string          `json:"location_id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Reason      string          `json:"reason"`
}

// UpdateThresholdsRequest body para PUT /api/inventory/thresholds.
type UpdateThresholdsRequest struct {
	ProductID  string           `json:"product_id"`
	LocationID string           `json:"location_id"`
	MinStock   decimal.Decimal  `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
}

// StockResponse snapshot de estoque com o status derivado.
type StockResponse struct {
	ProductID   string           `json:"product_id"`
	LocationID  string           `json:"location_id"`
	Quantity    decimal.Decimal  `json:"quantity"`
	AverageCost decimal.Decimal  `json:"average_cost"`
	MinStock    decimal.Decimal  `json:"min_stock"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	Status      string           `json:"status"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// StockListResponse listagem de snapshots.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// MovementResponse registro do histórico de movimentos.
type MovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     string          `json:"product_id"`
	LocationID    string          `json:"location_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Reason        string          `json:"reason,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// MovementListResponse histórico paginado.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockAlertDTO item da lista de alertas (fora da faixa normal).
type StockAlertDTO struct {
	ProductID  string           `json:"product_id"`
	SKU        string           `json:"sku,omitempty"`
	Name       string           `json:"name,omitempty"`
	LocationID string           `json:"location_id"`
	Quantity   decimal.Decimal  `json:"quantity"`
	MinStock   decimal.Decimal  `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
	Status     string           `json:"status"`
}
