package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/creditos-api/internal/domain/credit"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// TaxCreditFilter filtros opcionais de listagem.
type TaxCreditFilter struct {
	ClientID   string
	Status     credit.Status
	CreditType string
}

// StatusCount contagem e soma de valores por status (agregado para o dashboard).
type StatusCount struct {
	Status credit.Status
	Count  int
	Total  decimal.Decimal
}

// TaxCreditRepository porta de persistência para TaxCredit.
type TaxCreditRepository interface {
	Create(ctx context.Context, tc *entity.TaxCredit) error
	GetByID(ctx context.Context, id string) (*entity.TaxCredit, error)
	List(ctx context.Context, filter TaxCreditFilter, limit, offset int) ([]*entity.TaxCredit, error)
	Update(ctx context.Context, tc *entity.TaxCredit) error
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}
