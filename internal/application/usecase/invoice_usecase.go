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
)

// InvoiceUseCase faturamento de honorários de recuperação.
type InvoiceUseCase struct {
	repo       repository.InvoiceRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, now: time.Now}
}

// Create emite uma fatura para um cliente existente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || in.Description == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: valor da fatura deve ser positivo", domain.ErrInvalidInput)
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	issueDate := now
	if in.IssueDate != "" {
		issueDate, err = selic.ParseBaseDate(in.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de emissão", domain.ErrInvalidInput)
		}
	}
	dueDate, err := selic.ParseBaseDate(in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data de vencimento", domain.ErrInvalidInput)
	}

	number := in.Number
	if number == "" {
		number = fmt.Sprintf("FAT-%s", now.Format("20060102-150405"))
	}

	inv := &entity.Invoice{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Number:      number,
		Description: in.Description,
		Amount:      in.Amount,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Status:      entity.InvoiceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetByID busca uma fatura; ErrNotFound se não existir.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista faturas com filtros opcionais de cliente e status.
func (uc *InvoiceUseCase) List(ctx context.Context, clientID, status string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, clientID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Update aplica apenas os campos presentes.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		inv.Description = *in.Description
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: valor da fatura deve ser positivo", domain.ErrInvalidInput)
		}
		inv.Amount = *in.Amount
	}
	if in.DueDate != nil {
		d, err := selic.ParseBaseDate(*in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: data de vencimento", domain.ErrInvalidInput)
		}
		inv.DueDate = d
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue, entity.InvoiceStatusCanceled:
			inv.Status = *in.Status
		default:
			return nil, fmt.Errorf("%w: status de fatura %q", domain.ErrInvalidInput, *in.Status)
		}
	}
	inv.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// MarkPaid registra o pagamento da fatura.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusCanceled {
		return nil, fmt.Errorf("%w: fatura cancelada não pode ser paga", domain.ErrConflict)
	}
	now := uc.now()
	inv.Status = entity.InvoiceStatusPaid
	inv.PaidAt = &now
	inv.UpdatedAt = now
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Delete remove a fatura; devolve false quando o id não existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		ClientID:    inv.ClientID,
		ClientName:  inv.ClientName,
		Number:      inv.Number,
		Description: inv.Description,
		Amount:      inv.Amount,
		IssueDate:   inv.IssueDate.Format("02/01/2006"),
		DueDate:     inv.DueDate.Format("02/01/2006"),
		Status:      inv.Status,
		PaidAt:      inv.PaidAt,
	}
}
