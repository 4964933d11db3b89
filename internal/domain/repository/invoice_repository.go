package repository

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// InvoiceRepository porta de persistência para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, clientID, status string, limit, offset int) ([]*entity.Invoice, error)
	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id string) (bool, error)
}
