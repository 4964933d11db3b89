package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorfiscal/creditos-api/internal/application/dto"
	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cria um novo cliente; documento (CNPJ/CPF) é único.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByDocument(ctx, in.Document)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID busca um cliente; ErrNotFound se não existir.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update aplica apenas os campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Document != nil {
		client.Document = *in.Document
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove o cliente; devolve false quando o id não existe.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}
