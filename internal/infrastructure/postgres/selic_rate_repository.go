package postgres

import (
	"context"
	"fmt"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

var _ repository.SelicRateRepository = (*SelicRateRepo)(nil)

// SelicRateRepo persistência da série mensal SELIC.
type SelicRateRepo struct {
	q Querier
}

// NewSelicRateRepository constrói o adaptador.
func NewSelicRateRepository(q Querier) *SelicRateRepo {
	return &SelicRateRepo{q: q}
}

// Upsert grava a taxa do (ano, mês), substituindo o valor anterior se existir.
// A tabela tem constraint única em (year, month).
func (r *SelicRateRepo) Upsert(ctx context.Context, rate *entity.SelicRate) error {
	query := `
		INSERT INTO selic_rates (id, month, year, rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (year, month)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		rate.ID, rate.Month, rate.Year, rate.Rate, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert selic rate: %w", err)
	}
	return nil
}

// ListChronological devolve toda a série em ordem cronológica (mais antiga primeiro).
func (r *SelicRateRepo) ListChronological(ctx context.Context) ([]*entity.SelicRate, error) {
	query := `
		SELECT id, month, year, rate, created_at, updated_at
		FROM selic_rates ORDER BY year, month`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list selic rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.SelicRate
	for rows.Next() {
		var sr entity.SelicRate
		if err := rows.Scan(&sr.ID, &sr.Month, &sr.Year, &sr.Rate, &sr.CreatedAt, &sr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan selic rate: %w", err)
		}
		list = append(list, &sr)
	}
	return list, rows.Err()
}
