package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	appreport "github.com/gestorfiscal/creditos-api/internal/application/report"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

var _ appreport.CSVExporter = (*CSVWriter)(nil)

// CSVWriter exporta relatórios em CSV (separador ';', padrão de planilhas pt-BR).
type CSVWriter struct{}

// NewCSVWriter constrói o exportador.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// CorrectionsCSV serializa o histórico de atualizações monetárias.
func (e *CSVWriter) CorrectionsCSV(corrections []*entity.MonetaryCorrection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"data", "cliente", "credito", "valor_original", "valor_corrigido",
		"diferenca", "acumulado_pct", "meses", "serie_parcial"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: cabeçalho: %w", err)
	}
	for _, mc := range corrections {
		partial := ""
		if mc.PartialData {
			partial = "sim"
		}
		record := []string{
			mc.CorrectionDate.Format("02/01/2006"),
			mc.ClientName,
			mc.CreditID,
			mc.OriginalValue.StringFixed(2),
			mc.CorrectedValue.StringFixed(2),
			mc.Difference.StringFixed(2),
			mc.AccumulatedRate.String(),
			fmt.Sprint(mc.Months),
			partial,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: registro: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// CreditsCSV serializa os créditos tributários.
func (e *CSVWriter) CreditsCSV(credits []*entity.TaxCredit) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"cliente", "processo", "tipo", "valor", "valor_original",
		"periodo_inicio", "periodo_fim", "status", "aprovado_em"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: cabeçalho: %w", err)
	}
	for _, tc := range credits {
		approvedAt := ""
		if tc.ApprovedAt != nil {
			approvedAt = tc.ApprovedAt.Format("02/01/2006 15:04")
		}
		record := []string{
			tc.ClientName,
			tc.DocumentNumber,
			tc.CreditType,
			tc.CreditAmount.StringFixed(2),
			tc.OriginalAmount.StringFixed(2),
			tc.PeriodStart.Format("02/01/2006"),
			tc.PeriodEnd.Format("02/01/2006"),
			string(tc.Status),
			approvedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: registro: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
