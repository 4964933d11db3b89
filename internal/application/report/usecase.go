// Package report orquestra a exportação de relatórios fiscais: PDF (maroto),
// XLSX (excelize) e CSV. O núcleo só fornece as sequências em memória; a
// serialização fica nos adaptadores de infraestrutura.
package report

import (
	"context"
	"fmt"

	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

// exportLimit teto de linhas por relatório, para manter a resposta em memória.
const exportLimit = 5000

// UseCase casos de uso de relatórios.
type UseCase struct {
	corrRepo   repository.CorrectionRepository
	creditRepo repository.TaxCreditRepository
	pdf        CorrectionsPDFGenerator
	xlsx       WorkbookExporter
	csv        CSVExporter
}

// NewUseCase constrói o caso de uso com os exportadores.
func NewUseCase(
	corrRepo repository.CorrectionRepository,
	creditRepo repository.TaxCreditRepository,
	pdf CorrectionsPDFGenerator,
	xlsx WorkbookExporter,
	csv CSVExporter,
) *UseCase {
	return &UseCase{corrRepo: corrRepo, creditRepo: creditRepo, pdf: pdf, xlsx: xlsx, csv: csv}
}

// CorrectionsPDF relatório PDF do histórico de atualizações (filtro opcional de cliente).
func (uc *UseCase) CorrectionsPDF(ctx context.Context, clientID string) ([]byte, error) {
	corrections, err := uc.corrRepo.List(ctx, clientID, exportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("consultar histórico: %w", err)
	}
	return uc.pdf.GenerateCorrectionsPDF(ctx, corrections)
}

// CorrectionsXLSX planilha do histórico de atualizações.
func (uc *UseCase) CorrectionsXLSX(ctx context.Context, clientID string) ([]byte, error) {
	corrections, err := uc.corrRepo.List(ctx, clientID, exportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("consultar histórico: %w", err)
	}
	return uc.xlsx.CorrectionsWorkbook(corrections)
}

// CorrectionsCSV arquivo CSV do histórico de atualizações.
func (uc *UseCase) CorrectionsCSV(ctx context.Context, clientID string) ([]byte, error) {
	corrections, err := uc.corrRepo.List(ctx, clientID, exportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("consultar histórico: %w", err)
	}
	return uc.csv.CorrectionsCSV(corrections)
}

// CreditsXLSX planilha dos créditos tributários.
func (uc *UseCase) CreditsXLSX(ctx context.Context) ([]byte, error) {
	credits, err := uc.creditRepo.List(ctx, repository.TaxCreditFilter{}, exportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("consultar créditos: %w", err)
	}
	return uc.xlsx.CreditsWorkbook(credits)
}

// CreditsCSV arquivo CSV dos créditos tributários.
func (uc *UseCase) CreditsCSV(ctx context.Context) ([]byte, error) {
	credits, err := uc.creditRepo.List(ctx, repository.TaxCreditFilter{}, exportLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("consultar créditos: %w", err)
	}
	return uc.csv.CreditsCSV(credits)
}
