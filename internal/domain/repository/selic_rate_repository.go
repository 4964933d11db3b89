package repository

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// SelicRateRepository porta de persistência da série mensal SELIC.
type SelicRateRepository interface {
	// Upsert grava a taxa do (mês, ano), substituindo valor anterior se existir.
	Upsert(ctx context.Context, rate *entity.SelicRate) error
	// ListChronological devolve toda a série em ordem cronológica (mais antiga primeiro).
	ListChronological(ctx context.Context) ([]*entity.SelicRate, error)
}
