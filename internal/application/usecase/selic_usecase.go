package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
	"github.com/gestorfiscal/creditos-api/pkg/logger"
)

// RateFeed porta para a fonte externa de taxas (Banco Central, série SGS).
// Devolve observações em ordem cronológica.
type RateFeed interface {
	FetchMonthlyRates(ctx context.Context) ([]selic.PeriodicRate, error)
}

// SelicUseCase administração da série mensal SELIC.
type SelicUseCase struct {
	rateRepo repository.SelicRateRepository
	feed     RateFeed
	log      *logger.Logger
}

// NewSelicUseCase constrói o caso de uso. feed pode ser nil (sync desabilitado).
func NewSelicUseCase(rateRepo repository.SelicRateRepository, feed RateFeed, log *logger.Logger) *SelicUseCase {
	return &SelicUseCase{rateRepo: rateRepo, feed: feed, log: log}
}

// List devolve a série com o acumulado corrente de cada mês.
func (uc *SelicUseCase) List(ctx context.Context) ([]dto.SelicRateDTO, error) {
	rates, err := uc.rateRepo.ListChronological(ctx)
	if err != nil {
		return nil, err
	}
	periodic := make([]selic.PeriodicRate, 0, len(rates))
	for _, r := range rates {
		periodic = append(periodic, selic.PeriodicRate{Month: r.Month, Year: r.Year, Rate: r.Rate})
	}
	table, err := selic.Build(periodic)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SelicRateDTO, 0, table.Len())
	for _, e := range table.Entries() {
		out = append(out, dto.SelicRateDTO{
			Month:       e.Month,
			Year:        e.Year,
			Rate:        e.PeriodicRate,
			Accumulated: e.AccumulatedRate,
		})
	}
	return out, nil
}

// Upsert grava/atualiza as taxas informadas.
func (uc *SelicUseCase) Upsert(ctx context.Context, in dto.UpsertRatesRequest) error {
	if len(in.Rates) == 0 {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	for _, r := range in.Rates {
		if r.Month < 1 || r.Month > 12 || r.Year < 1995 {
			return fmt.Errorf("%w: mês/ano %02d/%d", domain.ErrInvalidInput, r.Month, r.Year)
		}
		if err := uc.rateRepo.Upsert(ctx, &entity.SelicRate{
			ID:        uuid.New().String(),
			Month:     r.Month,
			Year:      r.Year,
			Rate:      r.Rate,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Sync importa a série do feed externo (BCB) e grava via upsert.
func (uc *SelicUseCase) Sync(ctx context.Context) (*dto.SyncRatesResponse, error) {
	if uc.feed == nil {
		return nil, fmt.Errorf("%w: feed de taxas não configurado", domain.ErrConflict)
	}
	observations, err := uc.feed.FetchMonthlyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar feed BCB: %w", err)
	}
	now := time.Now()
	imported := 0
	for _, obs := range observations {
		if err := uc.rateRepo.Upsert(ctx, &entity.SelicRate{
			ID:        uuid.New().String(),
			Month:     obs.Month,
			Year:      obs.Year,
			Rate:      obs.Rate,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return nil, err
		}
		imported++
	}
	uc.log.Info().Int("imported", imported).Msg("série SELIC sincronizada com o BCB")
	return &dto.SyncRatesResponse{Imported: imported}, nil
}
