// Package pdf implementa a geração do formulário imprimível da receita
// oftálmica (TSO) entregue ao cliente junto com o pedido de lentes.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Ótica + título TSO  │  Data de emissão + validade  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + CPF + contato                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Olho | Esférico | Cilíndrico | Eixo | DNP          │
//	│  ADIÇÃO (perto)                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRESCRITOR: médico/optometrista + CRM                      │
//	│  OBSERVAÇÕES + rodapé                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/oticavisao/otica-api/internal/application/usecase"
	"github.com/oticavisao/otica-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.TSOPDFGenerator = (*MarotoTSOGenerator)(nil)

// MarotoTSOGenerator implementa usecase.TSOPDFGenerator usando Maroto v2.
type MarotoTSOGenerator struct {
	shopName string
}

// NewMarotoTSOGenerator constrói o gerador com o nome da ótica para o cabeçalho.
func NewMarotoTSOGenerator(shopName string) *MarotoTSOGenerator {
	return &MarotoTSOGenerator{shopName: shopName}
}

// Generate gera o PDF da receita e devolve seus bytes.
func (g *MarotoTSOGenerator) Generate(tso *entity.TSO, client *entity.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receita Oftálmica (TSO)", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(tso))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(measureHeaderRow())
	m.AddRows(measureRow("OD (direito)", tso.RightEye))
	m.AddRows(measureRow("OE (esquerdo)", tso.LeftEye))
	if !tso.Addition.IsZero() {
		m.AddRows(additionRow(tso.Addition))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(doctorRow(tso))
	if tso.Notes != "" {
		m.AddRows(notesRow(tso.Notes))
	}
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da ótica (esq) e datas de emissão/validade (dir).
func (g *MarotoTSOGenerator) headerRow(tso *entity.TSO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RECEITA OFTÁLMICA — TSO", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitida em: "+tso.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Válida até: "+tso.ValidUntil.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// clientRow: identificação do cliente.
func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CPF: %s   |   Tel: %s",
				formatCPF(client.CPF),
				nonEmpty(client.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// measureHeaderRow: cabeçalho da tabela de medidas.
func measureHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Olho", 3, align.Left),
		h("Esférico", 2, align.Center),
		h("Cilíndrico", 2, align.Center),
		h("Eixo", 2, align.Center),
		h("DNP (mm)", 3, align.Center),
	)
}

// measureRow: uma linha por olho.
func measureRow(label string, m entity.EyeMeasure) core.Row {
	cell := func(s string, size int) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 9, Align: align.Center, Top: 1,
		}))
	}
	return row.New(7).Add(
		col.New(3).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		cell(signedDioptry(m.Spherical), 2),
		cell(signedDioptry(m.Cylindrical), 2),
		cell(fmt.Sprintf("%d°", m.Axis), 2),
		cell(m.DNP.StringFixed(1), 3),
	)
}

// additionRow: adição para perto (lentes multifocais).
func additionRow(addition decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New("Adição", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(2).Add(text.New(signedDioptry(addition), props.Text{
			Size: 9, Align: align.Center, Top: 1,
		})),
		col.New(7),
	)
}

// doctorRow: prescritor e CRM.
func doctorRow(tso *entity.TSO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PRESCRITOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   CRM: %s",
				nonEmpty(tso.Doctor, "—"),
				nonEmpty(tso.CRM, "—"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// notesRow: observações livres.
func notesRow(notes string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(
				"Documento sem valor fiscal. Apresente esta receita ao retirar suas lentes.",
				props.Text{Size: 6.5, Color: colorGray, Top: 4},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// signedDioptry formata uma dioptria com sinal explícito e duas casas.
// Ex.: "-1.75", "+2.00", "0.00".
func signedDioptry(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}

// formatCPF apresenta um CPF normalizado como 000.000.000-00.
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}
