package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/application/usecase"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
	"github.com/gestorfiscal/creditos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeRateRepo struct {
	rates []*entity.SelicRate
}

func (r *fakeRateRepo) Upsert(_ context.Context, rate *entity.SelicRate) error {
	for _, existing := range r.rates {
		if existing.Year == rate.Year && existing.Month == rate.Month {
			existing.Rate = rate.Rate
			return nil
		}
	}
	r.rates = append(r.rates, rate)
	return nil
}

func (r *fakeRateRepo) ListChronological(_ context.Context) ([]*entity.SelicRate, error) {
	return r.rates, nil
}

// flatRateRepo monta uma série de n meses com taxa fixa a partir de jan/2025.
func flatRateRepo(n int, rate string) *fakeRateRepo {
	repo := &fakeRateRepo{}
	d := decimal.RequireFromString(rate)
	for i := 0; i < n; i++ {
		repo.rates = append(repo.rates, &entity.SelicRate{
			Month: i%12 + 1,
			Year:  2025 + i/12,
			Rate:  d,
		})
	}
	return repo
}

type fakeCorrHistory struct {
	created []*entity.MonetaryCorrection
}

func (r *fakeCorrHistory) Create(_ context.Context, mc *entity.MonetaryCorrection) error {
	r.created = append(r.created, mc)
	return nil
}

func (r *fakeCorrHistory) List(_ context.Context, clientID string, limit, offset int) ([]*entity.MonetaryCorrection, error) {
	var out []*entity.MonetaryCorrection
	// mais recente primeiro
	for i := len(r.created) - 1; i >= 0; i-- {
		mc := r.created[i]
		if clientID != "" && mc.ClientID != clientID {
			continue
		}
		out = append(out, mc)
	}
	if offset < len(out) {
		out = out[offset:]
	} else {
		out = nil
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCorrHistory) ListByCredit(_ context.Context, creditID string) ([]*entity.MonetaryCorrection, error) {
	var out []*entity.MonetaryCorrection
	for i := len(r.created) - 1; i >= 0; i-- {
		if r.created[i].CreditID == creditID {
			out = append(out, r.created[i])
		}
	}
	return out, nil
}

// fakeTxRunner executa o callback diretamente com os fakes (sem transação real).
type fakeTxRunner struct {
	corrRepo   repository.CorrectionRepository
	creditRepo repository.TaxCreditRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	corrRepo repository.CorrectionRepository,
	creditRepo repository.TaxCreditRepository,
) error) error {
	return fn(r.corrRepo, r.creditRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// helpers
// ──────────────────────────────────────────────────────────────────────────────

var correctionNow = time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newCorrectionSetup(rateRepo *fakeRateRepo) (*usecase.CorrectionUseCase, *fakeCorrHistory, *fakeCreditRepo) {
	history := &fakeCorrHistory{}
	creditRepo := newFakeCreditRepo()
	tx := &fakeTxRunner{corrRepo: history, creditRepo: creditRepo}
	uc := usecase.NewCorrectionUseCase(rateRepo, history, tx, testLogger()).
		WithClock(func() time.Time { return correctionNow })
	return uc, history, creditRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_GravaNoHistoricoPorPadrao(t *testing.T) {
	uc, history, _ := newCorrectionSetup(flatRateRepo(8, "1.00"))

	resp, err := uc.Calculate(context.Background(), dto.CalculateCorrectionRequest{
		ClientName: "Indústria Alfa Ltda",
		Value:      decimal.RequireFromString("100000.00"),
		Date:       "15/06/2025", // 3 meses inteiros até 15/09/2025
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Months)
	assert.Equal(t, "3.00", resp.AccumulatedRate.StringFixed(2))
	assert.Equal(t, "103000.00", resp.CorrectedValue.StringFixed(2))
	assert.Equal(t, "3000.00", resp.Difference.StringFixed(2))

	require.Len(t, history.created, 1, "cálculo deve entrar no histórico por padrão")
	assert.Equal(t, resp.ID, history.created[0].ID)
}

func TestCalculate_PersistFalseNaoGrava(t *testing.T) {
	uc, history, _ := newCorrectionSetup(flatRateRepo(8, "1.00"))

	persist := false
	_, err := uc.Calculate(context.Background(), dto.CalculateCorrectionRequest{
		ClientName: "Simulação",
		Value:      decimal.RequireFromString("1000.00"),
		Date:       "15/06/2025",
		Persist:    &persist,
	})
	require.NoError(t, err)
	assert.Empty(t, history.created, "persist=false não deve gravar histórico")
}

// TestCalculate_CreditoVinculado: com crédito vinculado, o valor corrigido é
// refletido no crédito e a nota de auditoria é anexada, junto da gravação do
// histórico (mesma transação).
func TestCalculate_CreditoVinculado(t *testing.T) {
	uc, history, creditRepo := newCorrectionSetup(flatRateRepo(8, "1.00"))

	original := decimal.RequireFromString("100000.00")
	tc := &entity.TaxCredit{
		ID:           "cred-1",
		ClientID:     "cli-1",
		ClientName:   "Indústria Alfa Ltda",
		CreditAmount: original,
		Notes:        "[01/06/2025 09:00 - Status alterado para analyzing] em análise",
	}
	require.NoError(t, creditRepo.Create(context.Background(), tc))

	resp, err := uc.Calculate(context.Background(), dto.CalculateCorrectionRequest{
		CreditID:   "cred-1",
		ClientID:   "cli-1",
		ClientName: "Indústria Alfa Ltda",
		Value:      original,
		Date:       "15/06/2025",
	})
	require.NoError(t, err)

	require.Len(t, history.created, 1)
	assert.Equal(t, "cred-1", history.created[0].CreditID)

	updated, err := creditRepo.GetByID(context.Background(), "cred-1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.CreditAmount.Equal(resp.CorrectedValue),
		"valor do crédito deve refletir o corrigido")

	lines := strings.Split(updated.Notes, "\n")
	require.Len(t, lines, 2, "a nota de atualização deve ser anexada sem apagar as anteriores")
	assert.Contains(t, lines[1], "Atualização monetária SELIC")
}

func TestCalculate_TabelaVazia(t *testing.T) {
	uc, _, _ := newCorrectionSetup(&fakeRateRepo{})

	_, err := uc.Calculate(context.Background(), dto.CalculateCorrectionRequest{
		ClientName: "Qualquer",
		Value:      decimal.RequireFromString("1000.00"),
		Date:       "15/06/2025",
	})
	assert.ErrorIs(t, err, selic.ErrEmptyTable)
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateBulk
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateBulk_IsolamentoEPersistencia(t *testing.T) {
	uc, history, _ := newCorrectionSetup(flatRateRepo(8, "1.00"))

	resp, err := uc.CalculateBulk(context.Background(), dto.BulkCorrectionRequest{
		Items: []dto.BulkCorrectionItem{
			{ClientName: "A", Value: decimal.RequireFromString("1000.00"), Date: "15/06/2025"},
			{ID: "cred-err", ClientName: "B", Value: decimal.RequireFromString("2000.00"), Date: "15/09/2025"}, // mesmo dia: nenhum mês inteiro
			{ClientName: "C", Value: decimal.RequireFromString("3000.00"), Date: "15/05/2025"},
		},
	})
	require.NoError(t, err, "item inválido não deve derrubar o lote")

	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, 1, resp.ErrorCount)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 1, resp.Errors[0].Index, "o erro deve apontar o índice original do item")
	assert.Equal(t, "cred-err", resp.Errors[0].CreditID)

	assert.Len(t, history.created, 2, "apenas os itens válidos entram no histórico")
}

func TestCalculateBulk_LoteVazio(t *testing.T) {
	uc, history, _ := newCorrectionSetup(flatRateRepo(8, "1.00"))

	resp, err := uc.CalculateBulk(context.Background(), dto.BulkCorrectionRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.SuccessCount)
	assert.Zero(t, resp.ErrorCount)
	assert.Empty(t, history.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MaisRecentePrimeiroComFiltroDeCliente(t *testing.T) {
	uc, _, _ := newCorrectionSetup(flatRateRepo(8, "1.00"))

	for _, in := range []dto.CalculateCorrectionRequest{
		{ClientID: "cli-1", ClientName: "A", Value: decimal.RequireFromString("1000.00"), Date: "15/06/2025"},
		{ClientID: "cli-2", ClientName: "B", Value: decimal.RequireFromString("2000.00"), Date: "15/06/2025"},
		{ClientID: "cli-1", ClientName: "A", Value: decimal.RequireFromString("3000.00"), Date: "15/05/2025"},
	} {
		_, err := uc.Calculate(context.Background(), in)
		require.NoError(t, err)
	}

	list, err := uc.History(context.Background(), "cli-1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "3000.00", list[0].OriginalValue.StringFixed(2),
		"o registro mais recente vem primeiro")
}

// ──────────────────────────────────────────────────────────────────────────────
// SelicUseCase — Sync com feed fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeFeed struct {
	rates []selic.PeriodicRate
	err   error
}

func (f *fakeFeed) FetchMonthlyRates(_ context.Context) ([]selic.PeriodicRate, error) {
	return f.rates, f.err
}

func TestSelicSync_ImportaDoFeed(t *testing.T) {
	rateRepo := &fakeRateRepo{}
	feed := &fakeFeed{rates: []selic.PeriodicRate{
		{Month: 1, Year: 2025, Rate: decimal.RequireFromString("1.01")},
		{Month: 2, Year: 2025, Rate: decimal.RequireFromString("0.99")},
	}}
	uc := usecase.NewSelicUseCase(rateRepo, feed, testLogger())

	resp, err := uc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Len(t, rateRepo.rates, 2)
}

func TestSelicSync_SemFeedConfigurado(t *testing.T) {
	uc := usecase.NewSelicUseCase(&fakeRateRepo{}, nil, testLogger())

	_, err := uc.Sync(context.Background())
	assert.Error(t, err, "sem feed configurado o sync deve falhar")
}

func TestSelicList_AcumuladoCorrente(t *testing.T) {
	uc := usecase.NewSelicUseCase(flatRateRepo(3, "0.50"), nil, testLogger())

	rates, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.Equal(t, "0.50", rates[0].Accumulated.StringFixed(2))
	assert.Equal(t, "1.50", rates[2].Accumulated.StringFixed(2),
		"acumulado do último mês deve somar toda a série")
}
