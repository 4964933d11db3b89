// Package report implementa os exportadores de relatórios: PDF (Maroto v2),
// XLSX (excelize) e CSV.
//
// Layout do relatório PDF (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + data de emissão                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Cliente | Valor Original | Corrigido | Dif. | Meses │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: soma dos originais / corrigidos / diferença         │
//	└─────────────────────────────────────────────────────────────┘
package report

import (
	"context"
	"fmt"
	"time"

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

	appreport "github.com/gestorfiscal/creditos-api/internal/application/report"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 56}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appreport.CorrectionsPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.CorrectionsPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCorrectionsPDF gera o PDF do histórico de atualizações e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateCorrectionsPDF(
	_ context.Context,
	corrections []*entity.MonetaryCorrection,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Atualizações Monetárias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(corrections) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(corrections))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título do relatório + data de emissão.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ATUALIZAÇÕES MONETÁRIAS — SELIC", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Cliente", 3, align.Left),
		h("Valor Original", 2, align.Right),
		h("Valor Corrigido", 2, align.Right),
		h("Diferença", 2, align.Right),
		h("Meses", 1, align.Center),
	)
}

// tableRows: uma linha por registro do histórico.
func tableRows(corrections []*entity.MonetaryCorrection) []core.Row {
	result := make([]core.Row, 0, len(corrections))
	for _, mc := range corrections {
		months := fmt.Sprint(mc.Months)
		if mc.PartialData {
			months += " *" // série SELIC não cobria todo o período
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mc.CorrectionDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				mc.ClientName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+mc.OriginalValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+mc.CorrectedValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+mc.Difference.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				months,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(corrections []*entity.MonetaryCorrection) core.Row {
	totalOriginal := decimal.Zero
	totalCorrected := decimal.Zero
	for _, mc := range corrections {
		totalOriginal = totalOriginal.Add(mc.OriginalValue)
		totalCorrected = totalCorrected.Add(mc.CorrectedValue)
	}
	totalDiff := totalCorrected.Sub(totalOriginal)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total original:"),
			label("Total corrigido:"),
			grandLabel("DIFERENÇA APURADA:"),
		),
		col.New(4).Add(
			value("R$ "+totalOriginal.StringFixed(2)),
			value("R$ "+totalCorrected.StringFixed(2)),
			grandValue("R$ "+totalDiff.StringFixed(2)),
		),
	)
}
