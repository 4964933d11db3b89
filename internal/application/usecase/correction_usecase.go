package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
	"github.com/gestorfiscal/creditos-api/pkg/logger"
)

// CorrectionTxRunner executa o callback dentro de uma transação, com os repos
// de histórico e de créditos atados à mesma tx (atomicidade entre gravar a
// atualização e refletir o valor corrigido no crédito).
type CorrectionTxRunner interface {
	Run(ctx context.Context, fn func(
		corrRepo repository.CorrectionRepository,
		creditRepo repository.TaxCreditRepository,
	) error) error
}

// CorrectionUseCase orquestra o motor de atualização monetária: monta a tabela
// SELIC a partir da série persistida, calcula e grava o histórico.
type CorrectionUseCase struct {
	rateRepo repository.SelicRateRepository
	corrRepo repository.CorrectionRepository
	tx       CorrectionTxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewCorrectionUseCase constrói o caso de uso.
func NewCorrectionUseCase(
	rateRepo repository.SelicRateRepository,
	corrRepo repository.CorrectionRepository,
	tx CorrectionTxRunner,
	log *logger.Logger,
) *CorrectionUseCase {
	return &CorrectionUseCase{rateRepo: rateRepo, corrRepo: corrRepo, tx: tx, log: log, now: time.Now}
}

// WithClock troca a fonte de tempo (testes).
func (uc *CorrectionUseCase) WithClock(now func() time.Time) *CorrectionUseCase {
	uc.now = now
	return uc
}

// loadTable monta a RateTable com a série persistida, em ordem cronológica.
func (uc *CorrectionUseCase) loadTable(ctx context.Context) (*selic.RateTable, error) {
	rates, err := uc.rateRepo.ListChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("carregar série SELIC: %w", err)
	}
	periodic := make([]selic.PeriodicRate, 0, len(rates))
	for _, r := range rates {
		periodic = append(periodic, selic.PeriodicRate{Month: r.Month, Year: r.Year, Rate: r.Rate})
	}
	return selic.Build(periodic)
}

// Calculate computa a atualização de um valor e, salvo persist=false, grava o
// resultado no histórico. Quando o cálculo referencia um crédito, a gravação do
// histórico e a atualização do valor corrigido no crédito ocorrem na mesma
// transação.
func (uc *CorrectionUseCase) Calculate(ctx context.Context, in dto.CalculateCorrectionRequest) (*dto.CorrectionResponse, error) {
	table, err := uc.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	correction, err := selic.Calculate(selic.CorrectionInput{
		CreditID:   in.CreditID,
		ClientID:   in.ClientID,
		ClientName: in.ClientName,
		Principal:  in.Value,
		BaseDate:   in.Date,
	}, table, uc.now())
	if err != nil {
		return nil, err
	}
	if correction.PartialData {
		uc.log.Warn().
			Int("months", correction.Months).
			Int("table_len", table.Len()).
			Msg("série SELIC não cobre todo o período; usado acumulado mais antigo")
	}

	if in.Persist == nil || *in.Persist {
		if err := uc.persist(ctx, correction); err != nil {
			return nil, err
		}
	}
	return toCorrectionResponse(correction), nil
}

// persist grava o histórico; com crédito vinculado, aplica também o valor
// corrigido e a linha de auditoria no crédito, atomicamente.
func (uc *CorrectionUseCase) persist(ctx context.Context, mc *entity.MonetaryCorrection) error {
	if mc.CreditID == "" {
		return uc.corrRepo.Create(ctx, mc)
	}
	return uc.tx.Run(ctx, func(corrRepo repository.CorrectionRepository, creditRepo repository.TaxCreditRepository) error {
		if err := corrRepo.Create(ctx, mc); err != nil {
			return err
		}
		tc, err := creditRepo.GetByID(ctx, mc.CreditID)
		if err != nil {
			return err
		}
		if tc == nil {
			return fmt.Errorf("%w: crédito %s", domain.ErrNotFound, mc.CreditID)
		}
		auditLine := fmt.Sprintf("[%s - Atualização monetária SELIC] %s meses, acumulado %s%%, diferença %s",
			mc.CorrectionDate.Format("02/01/2006 15:04"),
			fmt.Sprint(mc.Months), mc.AccumulatedRate, mc.Difference)
		if tc.Notes != "" {
			tc.Notes = tc.Notes + "\n" + auditLine
		} else {
			tc.Notes = auditLine
		}
		tc.CreditAmount = mc.CorrectedValue
		tc.UpdatedAt = uc.now()
		return creditRepo.Update(ctx, tc)
	})
}

// CalculateBulk aplica o cálculo a cada item de forma isolada; itens válidos
// são gravados no histórico (salvo persist=false) e itens inválidos apenas
// contados e reportados.
func (uc *CorrectionUseCase) CalculateBulk(ctx context.Context, in dto.BulkCorrectionRequest) (*dto.BulkCorrectionResponse, error) {
	table, err := uc.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]selic.CorrectionInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, selic.CorrectionInput{
			CreditID:   item.ID,
			ClientID:   item.ClientID,
			ClientName: item.ClientName,
			Principal:  item.Value,
			BaseDate:   item.Date,
		})
	}

	result := selic.CalculateBulk(items, table, uc.now())

	out := &dto.BulkCorrectionResponse{
		SuccessCount: result.SuccessCount,
		ErrorCount:   result.ErrorCount,
	}
	for _, e := range result.Errors {
		out.Errors = append(out.Errors, dto.BulkCorrectionError{
			Index:    e.Index,
			CreditID: e.CreditID,
			Message:  e.Err.Error(),
		})
	}

	persist := in.Persist == nil || *in.Persist
	for _, mc := range result.Corrections {
		if persist {
			if err := uc.corrRepo.Create(ctx, mc); err != nil {
				return nil, fmt.Errorf("gravar histórico: %w", err)
			}
		}
		out.Corrections = append(out.Corrections, *toCorrectionResponse(mc))
	}
	return out, nil
}

// History lista o histórico de atualizações, mais recente primeiro.
func (uc *CorrectionUseCase) History(ctx context.Context, clientID string, page dto.PageRequest) ([]*dto.CorrectionResponse, error) {
	page.DefaultPage()
	list, err := uc.corrRepo.List(ctx, clientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CorrectionResponse, 0, len(list))
	for _, mc := range list {
		out = append(out, toCorrectionResponse(mc))
	}
	return out, nil
}

// HistoryByCredit lista as atualizações de um crédito, mais recente primeiro.
func (uc *CorrectionUseCase) HistoryByCredit(ctx context.Context, creditID string) ([]*dto.CorrectionResponse, error) {
	if creditID == "" {
		return nil, domain.ErrMissingID
	}
	list, err := uc.corrRepo.ListByCredit(ctx, creditID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CorrectionResponse, 0, len(list))
	for _, mc := range list {
		out = append(out, toCorrectionResponse(mc))
	}
	return out, nil
}

func toCorrectionResponse(mc *entity.MonetaryCorrection) *dto.CorrectionResponse {
	return &dto.CorrectionResponse{
		ID:              mc.ID,
		CreditID:        mc.CreditID,
		ClientID:        mc.ClientID,
		ClientName:      mc.ClientName,
		OriginalValue:   mc.OriginalValue,
		CorrectedValue:  mc.CorrectedValue,
		Difference:      mc.Difference,
		AccumulatedRate: mc.AccumulatedRate,
		Months:          mc.Months,
		PartialData:     mc.PartialData,
		CorrectionDate:  mc.CorrectionDate,
	}
}
