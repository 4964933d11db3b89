package report

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// CorrectionsPDFGenerator porta para a representação em PDF do relatório de
// atualizações monetárias.
type CorrectionsPDFGenerator interface {
	GenerateCorrectionsPDF(ctx context.Context, corrections []*entity.MonetaryCorrection) ([]byte, error)
}

// WorkbookExporter porta para exportação XLSX.
type WorkbookExporter interface {
	CorrectionsWorkbook(corrections []*entity.MonetaryCorrection) ([]byte, error)
	CreditsWorkbook(credits []*entity.TaxCredit) ([]byte, error)
}

// CSVExporter porta para exportação CSV.
type CSVExporter interface {
	CorrectionsCSV(corrections []*entity.MonetaryCorrection) ([]byte, error)
	CreditsCSV(credits []*entity.TaxCredit) ([]byte, error)
}
