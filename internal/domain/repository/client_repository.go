package repository

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// ClientRepository porta de persistência para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByDocument(ctx context.Context, document string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) (bool, error)
}
