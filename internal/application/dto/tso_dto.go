package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EyeMeasureDTO medidas de refração de um olho.
type EyeMeasureDTO struct {
	Spherical   decimal.Decimal `json:"spherical"`
	Cylindrical decimal.Decimal `json:"cylindrical"`
	Axis        int             `json:"axis"`
	DNP         decimal.Decimal `json:"dnp"`
}

// CreateTSORequest body para POST /api/tso.
type CreateTSORequest struct {
	ClientID string          `json:"client_id"`
	RightEye EyeMeasureDTO   `json:"right_eye"`
	LeftEye  EyeMeasureDTO   `json:"left_eye"`
	Addition decimal.Decimal `json:"addition,omitempty"`
	Doctor   string          `json:"doctor,omitempty"`
	CRM      string          `json:"crm,omitempty"`
	IssuedAt *time.Time      `json:"issued_at,omitempty"` // default: agora
	Notes    string          `json:"notes,omitempty"`
}

// TSOResponse representação da receita nas respostas.
type TSOResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	UserID     string          `json:"user_id"`
	RightEye   EyeMeasureDTO   `json:"right_eye"`
	LeftEye    EyeMeasureDTO   `json:"left_eye"`
	Addition   decimal.Decimal `json:"addition"`
	Doctor     string          `json:"doctor,omitempty"`
	CRM        string          `json:"crm,omitempty"`
	IssuedAt   time.Time       `json:"issued_at"`
	ValidUntil time.Time       `json:"valid_until"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TSOListResponse listagem de receitas de um cliente.
type TSOListResponse struct {
	Items []TSOResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
