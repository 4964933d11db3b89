package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/gestorfiscal/creditos-api/internal/application/report"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

var _ appreport.WorkbookExporter = (*ExcelExporter)(nil)

// ExcelExporter exporta relatórios em XLSX via excelize.
type ExcelExporter struct{}

// NewExcelExporter constrói o exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// CorrectionsWorkbook monta a planilha do histórico de atualizações monetárias.
func (e *ExcelExporter) CorrectionsWorkbook(corrections []*entity.MonetaryCorrection) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "atualizacoes"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Data", "Cliente", "Crédito", "Valor Original", "Valor Corrigido",
		"Diferença", "Acumulado (%)", "Meses", "Série Parcial"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, mc := range corrections {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mc.CorrectionDate.Format("02/01/2006"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), mc.ClientName)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), mc.CreditID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), mc.OriginalValue.StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), mc.CorrectedValue.StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), mc.Difference.StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), mc.AccumulatedRate.String())
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), mc.Months)
		if mc.PartialData {
			_ = f.SetCellValue(sheet, fmt.Sprintf("I%d", row), "sim")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// CreditsWorkbook monta a planilha dos créditos tributários.
func (e *ExcelExporter) CreditsWorkbook(credits []*entity.TaxCredit) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "creditos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Cliente", "Processo", "Tipo", "Valor", "Valor Original",
		"Período Início", "Período Fim", "Status", "Aprovado Em"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, tc := range credits {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tc.ClientName)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tc.DocumentNumber)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tc.CreditType)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tc.CreditAmount.StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tc.OriginalAmount.StringFixed(2))
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tc.PeriodStart.Format("02/01/2006"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tc.PeriodEnd.Format("02/01/2006"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), string(tc.Status))
		if tc.ApprovedAt != nil {
			_ = f.SetCellValue(sheet, fmt.Sprintf("I%d", row), tc.ApprovedAt.Format("02/01/2006 15:04"))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: gravar planilha: %w", err)
	}
	return buf.Bytes(), nil
}
