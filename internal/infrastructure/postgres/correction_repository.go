package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

var _ repository.CorrectionRepository = (*CorrectionRepo)(nil)

// CorrectionRepo persistência do histórico de atualizações monetárias
// (append-only; usável com pool ou tx).
type CorrectionRepo struct {
	q Querier
}

// NewCorrectionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCorrectionRepository(q Querier) *CorrectionRepo {
	return &CorrectionRepo{q: q}
}

const correctionColumns = `id, credit_id, client_id, client_name, original_value,
	corrected_value, difference, accumulated_rate, months, partial_data,
	correction_date, created_at`

// Create grava um registro de atualização. Registros nunca são alterados.
func (r *CorrectionRepo) Create(ctx context.Context, mc *entity.MonetaryCorrection) error {
	query := `
		INSERT INTO monetary_corrections (` + correctionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	creditID := (*string)(nil)
	if mc.CreditID != "" {
		creditID = &mc.CreditID
	}
	_, err := r.q.Exec(ctx, query,
		mc.ID, creditID, mc.ClientID, mc.ClientName, mc.OriginalValue,
		mc.CorrectedValue, mc.Difference, mc.AccumulatedRate, mc.Months, mc.PartialData,
		mc.CorrectionDate, mc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert correction: %w", err)
	}
	return nil
}

// List devolve o histórico mais recente primeiro; clientID vazio lista tudo.
func (r *CorrectionRepo) List(ctx context.Context, clientID string, limit, offset int) ([]*entity.MonetaryCorrection, error) {
	query := `SELECT ` + correctionColumns + ` FROM monetary_corrections`
	args := []any{}
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list corrections: %w", err)
	}
	defer rows.Close()
	return collectCorrections(rows)
}

// ListByCredit devolve as atualizações de um crédito, mais recente primeiro.
func (r *CorrectionRepo) ListByCredit(ctx context.Context, creditID string) ([]*entity.MonetaryCorrection, error) {
	query := `SELECT ` + correctionColumns + `
		FROM monetary_corrections WHERE credit_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, creditID)
	if err != nil {
		return nil, fmt.Errorf("list corrections by credit: %w", err)
	}
	defer rows.Close()
	return collectCorrections(rows)
}

func collectCorrections(rows pgx.Rows) ([]*entity.MonetaryCorrection, error) {
	var list []*entity.MonetaryCorrection
	for rows.Next() {
		var mc entity.MonetaryCorrection
		var creditID *string
		if err := rows.Scan(
			&mc.ID, &creditID, &mc.ClientID, &mc.ClientName, &mc.OriginalValue,
			&mc.CorrectedValue, &mc.Difference, &mc.AccumulatedRate, &mc.Months, &mc.PartialData,
			&mc.CorrectionDate, &mc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan correction: %w", err)
		}
		if creditID != nil {
			mc.CreditID = *creditID
		}
		list = append(list, &mc)
	}
	return list, rows.Err()
}
