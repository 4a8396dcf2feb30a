package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EyeMeasure são as medidas de refração de um olho.
type EyeMeasure struct {
	Spherical   decimal.Decimal // esférico (ex.: -1.75)
	Cylindrical decimal.Decimal // cilíndrico
	Axis        int             // eixo em graus (0–180)
	DNP         decimal.Decimal // distância naso-pupilar em mm
}

// TSO representa a receita oftálmica do cliente (Termo de Serviço Óptico),
// o formulário imprimível entregue junto com o pedido de lentes.
type TSO struct {
	ID         string
	ClientID   string
	UserID     string          // quem registrou
	RightEye   EyeMeasure      // OD
	LeftEye    EyeMeasure      // OE
	Addition   decimal.Decimal // adição para perto (multifocal)
	Doctor     string          // médico/optometrista que prescreveu
	CRM        string
	IssuedAt   time.Time // data da receita
	ValidUntil time.Time // validade (normalmente 1 ano)
	Notes      string
	CreatedAt  time.Time
}
