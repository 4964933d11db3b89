package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/domain/credit"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

const recentCorrectionsLimit = 5

// DashboardUseCase agrega contagens e somas por status para o painel.
type DashboardUseCase struct {
	creditRepo repository.TaxCreditRepository
	corrRepo   repository.CorrectionRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(creditRepo repository.TaxCreditRepository, corrRepo repository.CorrectionRepository) *DashboardUseCase {
	return &DashboardUseCase{creditRepo: creditRepo, corrRepo: corrRepo}
}

// Summary monta a visão agregada. As duas consultas são independentes e
// executam em paralelo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type statusResult struct {
		rows []repository.StatusCount
		err  error
	}
	type recentResult struct {
		rows []*entity.MonetaryCorrection
		err  error
	}

	statusChan := make(chan statusResult, 1)
	recentChan := make(chan recentResult, 1)

	go func() {
		rows, err := uc.creditRepo.CountByStatus(ctx)
		statusChan <- statusResult{rows, err}
	}()
	go func() {
		rows, err := uc.corrRepo.List(ctx, "", recentCorrectionsLimit, 0)
		recentChan <- recentResult{rows, err}
	}()

	statusRes := <-statusChan
	recentRes := <-recentChan

	if statusRes.err != nil {
		return nil, statusRes.err
	}
	if recentRes.err != nil {
		return nil, recentRes.err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalValue:     decimal.Zero,
		ApprovedValue:  decimal.Zero,
		RecoveredValue: decimal.Zero,
	}
	for _, row := range statusRes.rows {
		summary.TotalCredits += row.Count
		summary.TotalValue = summary.TotalValue.Add(row.Total)
		switch row.Status {
		case credit.StatusApproved:
			summary.ApprovedValue = row.Total
		case credit.StatusRecovered:
			summary.RecoveredValue = row.Total
		}
		summary.ByStatus = append(summary.ByStatus, dto.StatusSummaryDTO{
			Status: string(row.Status),
			Count:  row.Count,
			Total:  row.Total,
		})
	}
	for _, mc := range recentRes.rows {
		summary.RecentCorrection = append(summary.RecentCorrection, *toCorrectionResponse(mc))
	}
	return summary, nil
}
