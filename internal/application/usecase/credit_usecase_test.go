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
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/credit"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// fake em memória do TaxCreditRepository (guarda e devolve cópias, como a base)
// ──────────────────────────────────────────────────────────────────────────────

type fakeCreditRepo struct {
	items map[string]entity.TaxCredit
}

func newFakeCreditRepo() *fakeCreditRepo {
	return &fakeCreditRepo{items: make(map[string]entity.TaxCredit)}
}

func (r *fakeCreditRepo) Create(_ context.Context, tc *entity.TaxCredit) error {
	r.items[tc.ID] = *tc
	return nil
}

func (r *fakeCreditRepo) GetByID(_ context.Context, id string) (*entity.TaxCredit, error) {
	tc, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	out := tc
	return &out, nil
}

func (r *fakeCreditRepo) List(_ context.Context, filter repository.TaxCreditFilter, limit, offset int) ([]*entity.TaxCredit, error) {
	var out []*entity.TaxCredit
	for _, tc := range r.items {
		if filter.Status != "" && tc.Status != filter.Status {
			continue
		}
		if filter.ClientID != "" && tc.ClientID != filter.ClientID {
			continue
		}
		item := tc
		out = append(out, &item)
	}
	return out, nil
}

func (r *fakeCreditRepo) Update(_ context.Context, tc *entity.TaxCredit) error {
	r.items[tc.ID] = *tc
	return nil
}

func (r *fakeCreditRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *fakeCreditRepo) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	counts := map[credit.Status]*repository.StatusCount{}
	for _, tc := range r.items {
		c, ok := counts[tc.Status]
		if !ok {
			c = &repository.StatusCount{Status: tc.Status, Total: decimal.Zero}
			counts[tc.Status] = c
		}
		c.Count++
		c.Total = c.Total.Add(tc.CreditAmount)
	}
	var out []repository.StatusCount
	for _, c := range counts {
		out = append(out, *c)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// helpers
// ──────────────────────────────────────────────────────────────────────────────

var baseTime = time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

func validCreateRequest() dto.CreateCreditRequest {
	return dto.CreateCreditRequest{
		ClientID:       "cli-1",
		ClientName:     "Indústria Alfa Ltda",
		DocumentNumber: "PER-2025-0001",
		CreditType:     entity.CreditTypeICMS,
		CreditAmount:   decimal.RequireFromString("150000.00"),
		PeriodStart:    "01/01/2024",
		PeriodEnd:      "31/12/2024",
	}
}

// newUseCase monta o caso de uso com relógio fixo avançável.
func newUseCase(repo *fakeCreditRepo) (*usecase.CreditUseCase, *time.Time) {
	clock := baseTime
	uc := usecase.NewCreditUseCase(repo).WithClock(func() time.Time { return clock })
	return uc, &clock
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CreditoValido(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	resp, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status, "status inicial deve ser pending")
	assert.True(t, resp.OriginalAmount.Equal(resp.CreditAmount),
		"na criação o valor original deve ser igual ao valor do crédito")
	assert.Nil(t, resp.ApprovedAt)
}

func TestCreate_StatusExplicitoNormalizado(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	in := validCreateRequest()
	in.Status = "ANALYZING"
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "analyzing", resp.Status, "status deve ser normalizado para minúsculo")
}

func TestCreate_CamposObrigatorios(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	for _, mutate := range []func(*dto.CreateCreditRequest){
		func(r *dto.CreateCreditRequest) { r.ClientName = "" },
		func(r *dto.CreateCreditRequest) { r.DocumentNumber = "" },
		func(r *dto.CreateCreditRequest) { r.CreditType = "" },
	} {
		in := validCreateRequest()
		mutate(&in)
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_TipoDeCreditoInvalido(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	in := validCreateRequest()
	in.CreditType = "ISS"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidCredit)
}

func TestCreate_ValorNaoPositivoRejeitado(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	in := validCreateRequest()
	in.CreditAmount = decimal.Zero
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PeriodoInvertidoRejeitado(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	in := validCreateRequest()
	in.PeriodStart = "31/12/2024"
	in.PeriodEnd = "01/01/2024"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeStatus — trilha de auditoria e ApprovedAt
// ──────────────────────────────────────────────────────────────────────────────

// TestChangeStatus_AuditoriaAcumulada: duas transições produzem duas linhas
// datadas distintas em Notes, cada uma preservando o texto livre informado.
func TestChangeStatus_AuditoriaAcumulada(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, clock := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{
		Status: "analyzing",
		Notes:  "documentação recebida",
	})
	require.NoError(t, err)

	*clock = clock.Add(48 * time.Hour)
	resp, err := uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{
		Status: "approved",
		Notes:  "parecer favorável",
	})
	require.NoError(t, err)

	lines := strings.Split(resp.Notes, "\n")
	require.Len(t, lines, 2, "cada transição deve anexar exatamente uma linha")

	assert.Contains(t, lines[0], "Status alterado para analyzing")
	assert.Contains(t, lines[0], "documentação recebida", "texto livre da primeira transição preservado")
	assert.Contains(t, lines[1], "Status alterado para approved")
	assert.Contains(t, lines[1], "parecer favorável", "texto livre da segunda transição preservado")
	assert.NotEqual(t, lines[0][:18], lines[1][:18], "os timestamps das linhas devem diferir")
}

// TestChangeStatus_ApprovedAtExclusivo: ApprovedAt é definido somente na
// transição para approved e não é tocado pelas demais.
func TestChangeStatus_ApprovedAtExclusivo(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, clock := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: "analyzing"})
	require.NoError(t, err)
	assert.Nil(t, resp.ApprovedAt, "transição que não é approved não define ApprovedAt")

	resp, err = uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: "APPROVED"})
	require.NoError(t, err)
	require.NotNil(t, resp.ApprovedAt)
	approvedAt := *resp.ApprovedAt

	*clock = clock.Add(24 * time.Hour)
	resp, err = uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: "rejected"})
	require.NoError(t, err)
	require.NotNil(t, resp.ApprovedAt, "ApprovedAt preexistente não deve ser apagado")
	assert.Equal(t, approvedAt, *resp.ApprovedAt, "ApprovedAt preexistente não deve ser alterado")
}

func TestChangeStatus_Guardas(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, _ := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.ChangeStatus(context.Background(), "", dto.ChangeStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, domain.ErrMissingID)

	_, err = uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: ""})
	assert.ErrorIs(t, err, domain.ErrMissingStatus)

	_, err = uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: "arquivado"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.ChangeStatus(context.Background(), "inexistente", dto.ChangeStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChangeStatus_AvancaUpdatedAt(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, clock := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	*clock = clock.Add(time.Hour)
	resp, err := uc.ChangeStatus(context.Background(), created.ID, dto.ChangeStatusRequest{Status: "recovered"})
	require.NoError(t, err)
	assert.True(t, resp.UpdatedAt.After(created.UpdatedAt),
		"toda transição deve avançar UpdatedAt")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MesclaApenasCamposPresentes(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, _ := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	newName := "Indústria Beta S/A"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateCreditRequest{
		ClientName: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, resp.ClientName)
	assert.Equal(t, created.DocumentNumber, resp.DocumentNumber, "campo ausente não deve mudar")
	assert.Equal(t, created.CreditType, resp.CreditType, "campo ausente não deve mudar")
}

func TestUpdate_StatusRenormalizado(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, _ := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	upper := "RECOVERED"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateCreditRequest{Status: &upper})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Status)
}

func TestDelete_IdInexistenteDevolveFalse(t *testing.T) {
	uc, _ := newUseCase(newFakeCreditRepo())

	ok, err := uc.Delete(context.Background(), "nao-existe")
	require.NoError(t, err, "delete de id inexistente não é erro")
	assert.False(t, ok, "deve sinalizar false para o chamador decidir como exibir")
}

func TestDelete_RemoveExistente(t *testing.T) {
	repo := newFakeCreditRepo()
	uc, _ := newUseCase(repo)

	created, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	ok, err := uc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
