package repository

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// CorrectionRepository porta de persistência do histórico de atualizações
// monetárias. O histórico é append-only: registros nunca são alterados.
type CorrectionRepository interface {
	Create(ctx context.Context, mc *entity.MonetaryCorrection) error
	// List devolve o histórico mais recente primeiro; clientID vazio lista tudo.
	List(ctx context.Context, clientID string, limit, offset int) ([]*entity.MonetaryCorrection, error)
	ListByCredit(ctx context.Context, creditID string) ([]*entity.MonetaryCorrection, error)
}
