package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gestorfiscal/creditos-api/internal/domain"
	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
	"github.com/gestorfiscal/creditos-api/internal/domain/repository"
)

var _ repository.TaxCreditRepository = (*TaxCreditRepo)(nil)

// TaxCreditRepo implementação da porta TaxCreditRepository sobre PostgreSQL
// (usável com pool ou tx).
type TaxCreditRepo struct {
	q Querier
}

// NewTaxCreditRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTaxCreditRepository(q Querier) *TaxCreditRepo {
	return &TaxCreditRepo{q: q}
}

const taxCreditColumns = `id, client_id, client_name, document_number, credit_type,
	credit_amount, original_amount, period_start, period_end, status, notes,
	created_at, updated_at, approved_at`

// Create persiste um novo crédito tributário.
func (r *TaxCreditRepo) Create(ctx context.Context, tc *entity.TaxCredit) error {
	query := `
		INSERT INTO tax_credits (` + taxCreditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		tc.ID, tc.ClientID, tc.ClientName, tc.DocumentNumber, tc.CreditType,
		tc.CreditAmount, tc.OriginalAmount, tc.PeriodStart, tc.PeriodEnd, tc.Status, tc.Notes,
		tc.CreatedAt, tc.UpdatedAt, tc.ApprovedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tax credit: %w", err)
	}
	return nil
}

// GetByID busca um crédito por ID; (nil, nil) se não existir.
func (r *TaxCreditRepo) GetByID(ctx context.Context, id string) (*entity.TaxCredit, error) {
	query := `SELECT ` + taxCreditColumns + ` FROM tax_credits WHERE id = $1`
	row := r.q.QueryRow(ctx, query, id)
	tc, err := scanTaxCredit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax credit: %w", err)
	}
	return tc, nil
}

// List lista créditos com filtros opcionais e paginação, mais recentes primeiro.
func (r *TaxCreditRepo) List(ctx context.Context, filter repository.TaxCreditFilter, limit, offset int) ([]*entity.TaxCredit, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CreditType != "" {
		args = append(args, filter.CreditType)
		conditions = append(conditions, fmt.Sprintf("credit_type = $%d", len(args)))
	}

	query := `SELECT ` + taxCreditColumns + ` FROM tax_credits`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tax credits: %w", err)
	}
	defer rows.Close()
	var list []*entity.TaxCredit
	for rows.Next() {
		tc, err := scanTaxCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tax credit: %w", err)
		}
		list = append(list, tc)
	}
	return list, rows.Err()
}

// Update atualiza um crédito existente.
func (r *TaxCreditRepo) Update(ctx context.Context, tc *entity.TaxCredit) error {
	query := `
		UPDATE tax_credits SET
			client_id = $2, client_name = $3, document_number = $4, credit_type = $5,
			credit_amount = $6, original_amount = $7, period_start = $8, period_end = $9,
			status = $10, notes = $11, updated_at = $12, approved_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		tc.ID, tc.ClientID, tc.ClientName, tc.DocumentNumber, tc.CreditType,
		tc.CreditAmount, tc.OriginalAmount, tc.PeriodStart, tc.PeriodEnd,
		tc.Status, tc.Notes, tc.UpdatedAt, tc.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("update tax credit: %w", err)
	}
	return nil
}

// Delete remove um crédito; devolve false quando o ID não existia.
func (r *TaxCreditRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tax_credits WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete tax credit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus agrega contagem e soma de valores por status (dashboard).
func (r *TaxCreditRepo) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(credit_amount), 0)
		FROM tax_credits GROUP BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()
	var out []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.Total); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func scanTaxCredit(row pgx.Row) (*entity.TaxCredit, error) {
	var tc entity.TaxCredit
	err := row.Scan(
		&tc.ID, &tc.ClientID, &tc.ClientName, &tc.DocumentNumber, &tc.CreditType,
		&tc.CreditAmount, &tc.OriginalAmount, &tc.PeriodStart, &tc.PeriodEnd,
		&tc.Status, &tc.Notes, &tc.CreatedAt, &tc.UpdatedAt, &tc.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}
