package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/credit"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
)

// CreditUseCase ciclo de vida do crédito tributário: criação, atualização,
// exclusão e transição de status com trilha de auditoria.
type CreditUseCase struct {
	repo repository.TaxCreditRepository
	now  func() time.Time
}

// NewCreditUseCase constrói o caso de uso.
func NewCreditUseCase(repo repository.TaxCreditRepository) *CreditUseCase {
	return &CreditUseCase{repo: repo, now: time.Now}
}

// WithClock troca a fonte de tempo (testes).
func (uc *CreditUseCase) WithClock(now func() time.Time) *CreditUseCase {
	uc.now = now
	return uc
}

// Create registra um novo crédito. Exige nome do cliente, número do documento,
// tipo de crédito válido e valor positivo. Status inicial é pending salvo
// indicação explícita.
func (uc *CreditUseCase) Create(ctx context.Context, in dto.CreateCreditRequest) (*dto.CreditResponse, error) {
	if in.ClientName == "" || in.DocumentNumber == "" || in.CreditType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCreditType(in.CreditType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCredit, in.CreditType)
	}
	if !in.CreditAmount.IsPositive() {
		return nil, fmt.Errorf("%w: valor do crédito deve ser positivo", domain.ErrInvalidInput)
	}
	periodStart, err := selic.ParseBaseDate(in.PeriodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: período inicial", domain.ErrInvalidInput)
	}
	periodEnd, err := selic.ParseBaseDate(in.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: período final", domain.ErrInvalidInput)
	}
	if periodEnd.Before(periodStart) {
		return nil, domain.ErrInvalidPeriod
	}

	status := credit.StatusPending
	if in.Status != "" {
		status, err = credit.Normalize(in.Status)
		if err != nil {
			return nil, err
		}
	}

	now := uc.now()
	tc := &entity.TaxCredit{
		ID:             uuid.New().String(),
		ClientID:       in.ClientID,
		ClientName:     in.ClientName,
		DocumentNumber: in.DocumentNumber,
		CreditType:     in.CreditType,
		CreditAmount:   in.CreditAmount,
		OriginalAmount: in.CreditAmount,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		Status:         status,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, tc); err != nil {
		return nil, err
	}
	return toCreditResponse(tc), nil
}

// GetByID busca um crédito; ErrNotFound se não existir.
func (uc *CreditUseCase) GetByID(ctx context.Context, id string) (*dto.CreditResponse, error) {
	tc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	return toCreditResponse(tc), nil
}

// List lista créditos com filtros opcionais.
func (uc *CreditUseCase) List(ctx context.Context, in dto.CreditListRequest) ([]*dto.CreditResponse, error) {
	in.DefaultPage()
	filter := repository.TaxCreditFilter{
		ClientID:   in.ClientID,
		CreditType: in.CreditType,
	}
	if in.Status != "" {
		st, err := credit.Normalize(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}
	list, err := uc.repo.List(ctx, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CreditResponse, 0, len(list))
	for _, tc := range list {
		out = append(out, toCreditResponse(tc))
	}
	return out, nil
}

// Update aplica apenas os campos presentes; status passa pela normalização
// canônica. UpdatedAt é sempre avançado.
func (uc *CreditUseCase) Update(ctx context.Context, id string, in dto.UpdateCreditRequest) (*dto.CreditResponse, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}
	tc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}

	if in.ClientName != nil {
		tc.ClientName = *in.ClientName
	}
	if in.DocumentNumber != nil {
		tc.DocumentNumber = *in.DocumentNumber
	}
	if in.CreditType != nil {
		if !entity.ValidCreditType(*in.CreditType) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCredit, *in.CreditType)
		}
		tc.CreditType = *in.CreditType
	}
	if in.CreditAmount != nil {
		if !in.CreditAmount.IsPositive() {
			return nil, fmt.Errorf("%w: valor do crédito deve ser positivo", domain.ErrInvalidInput)
		}
		tc.CreditAmount = *in.CreditAmount
	}
	if in.PeriodStart != nil {
		d, err := selic.ParseBaseDate(*in.PeriodStart)
		if err != nil {
			return nil, fmt.Errorf("%w: período inicial", domain.ErrInvalidInput)
		}
		tc.PeriodStart = d
	}
	if in.PeriodEnd != nil {
		d, err := selic.ParseBaseDate(*in.PeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: período final", domain.ErrInvalidInput)
		}
		tc.PeriodEnd = d
	}
	if tc.PeriodEnd.Before(tc.PeriodStart) {
		return nil, domain.ErrInvalidPeriod
	}
	if in.Status != nil {
		st, err := credit.Normalize(*in.Status)
		if err != nil {
			return nil, err
		}
		tc.Status = st
	}
	if in.Notes != nil {
		tc.Notes = *in.Notes
	}

	tc.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, tc); err != nil {
		return nil, err
	}
	return toCreditResponse(tc), nil
}

// ChangeStatus executa uma transição de status:
//   - normaliza o novo status no ponto único canônico;
//   - consulta a política de transição (hoje total);
//   - anexa linha de auditoria datada em Notes, preservando o histórico;
//   - define ApprovedAt somente na transição para approved;
//   - avança UpdatedAt.
func (uc *CreditUseCase) ChangeStatus(ctx context.Context, id string, in dto.ChangeStatusRequest) (*dto.CreditResponse, error) {
	if id == "" {
		return nil, domain.ErrMissingID
	}
	newStatus, err := credit.Normalize(in.Status)
	if err != nil {
		return nil, err
	}
	tc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, domain.ErrNotFound
	}
	if !credit.TransitionAllowed(tc.Status, newStatus) {
		return nil, fmt.Errorf("%w: transição %s -> %s não permitida", domain.ErrConflict, tc.Status, newStatus)
	}

	now := uc.now()
	auditLine := fmt.Sprintf("[%s - Status alterado para %s] %s",
		now.Format("02/01/2006 15:04"), newStatus, in.Notes)
	if tc.Notes != "" {
		tc.Notes = tc.Notes + "\n" + auditLine
	} else {
		tc.Notes = auditLine
	}

	tc.Status = newStatus
	if newStatus == credit.StatusApproved {
		approvedAt := now
		tc.ApprovedAt = &approvedAt
	}
	tc.UpdatedAt = now

	if err := uc.repo.Update(ctx, tc); err != nil {
		return nil, err
	}
	return toCreditResponse(tc), nil
}

// Delete remove o crédito. Devolve false (sem erro) quando o id não existe;
// cabe ao chamador sinalizar isso ao usuário.
func (uc *CreditUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, domain.ErrMissingID
	}
	return uc.repo.Delete(ctx, id)
}

func toCreditResponse(tc *entity.TaxCredit) *dto.CreditResponse {
	return &dto.CreditResponse{
		ID:             tc.ID,
		ClientID:       tc.ClientID,
		ClientName:     tc.ClientName,
		DocumentNumber: tc.DocumentNumber,
		CreditType:     tc.CreditType,
		CreditAmount:   tc.CreditAmount,
		OriginalAmount: tc.OriginalAmount,
		PeriodStart:    tc.PeriodStart.Format("02/01/2006"),
		PeriodEnd:      tc.PeriodEnd.Format("02/01/2006"),
		Status:         string(tc.Status),
		Notes:          tc.Notes,
		CreatedAt:      tc.CreatedAt,
		UpdatedAt:      tc.UpdatedAt,
		ApprovedAt:     tc.ApprovedAt,
	}
}
