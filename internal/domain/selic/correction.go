package selic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Formatos de data aceitos para a data base.
var baseDateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// CorrectionInput parâmetros de um cálculo individual.
type CorrectionInput struct {
	CreditID   string
	ClientID   string
	ClientName string
	Principal  decimal.Decimal
	BaseDate   string // DD/MM/AAAA ou ISO 8601
}

// ParseBaseDate interpreta a data base em DD/MM/AAAA ou ISO 8601.
func ParseBaseDate(s string) (time.Time, error) {
	for _, layout := range baseDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// WholeMonthsBetween devolve os meses inteiros decorridos entre from e to
// (truncado, nunca arredondado): o mês só conta quando o dia de to alcança o
// dia de from.
func WholeMonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// Calculate computa o valor corrigido de um principal entre a data base e hoje
// usando o acumulado da tabela para os meses decorridos.
//
// corrigido = principal * (1 + acumulado/100)
//
// Cálculo puro: o registro retornado não é persistido aqui.
func Calculate(in CorrectionInput, table *RateTable, today time.Time) (*entity.MonetaryCorrection, error) {
	if !in.Principal.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidValue, in.Principal)
	}
	baseDate, err := ParseBaseDate(in.BaseDate)
	if err != nil {
		return nil, err
	}
	if baseDate.After(today) {
		return nil, fmt.Errorf("%w: %s", ErrFutureDate, baseDate.Format("02/01/2006"))
	}
	months := WholeMonthsBetween(baseDate, today)
	if months <= 0 {
		return nil, ErrPeriodTooShort
	}
	accumulated, partial, err := table.AccumulatedFor(months)
	if err != nil {
		return nil, err
	}

	corrected := in.Principal.Mul(one.Add(accumulated.Div(hundred)))
	difference := corrected.Sub(in.Principal)

	return &entity.MonetaryCorrection{
		ID:              uuid.New().String(),
		CreditID:        in.CreditID,
		ClientID:        in.ClientID,
		ClientName:      in.ClientName,
		OriginalValue:   in.Principal,
		CorrectedValue:  corrected,
		Difference:      difference,
		AccumulatedRate: accumulated,
		Months:          months,
		PartialData:     partial,
		CorrectionDate:  today,
		CreatedAt:       today,
	}, nil
}

// BulkItemError erro de um item individual do lote, com sua posição.
type BulkItemError struct {
	Index    int
	CreditID string
	Err      error
}

// BulkResult resultado do cálculo em lote com isolamento por item.
type BulkResult struct {
	Corrections  []*entity.MonetaryCorrection
	SuccessCount int
	ErrorCount   int
	Errors       []BulkItemError
}

// CalculateBulk aplica Calculate a cada item de forma independente. Itens com
// falha são contados e registrados em Errors; um item ruim nunca aborta o lote.
func CalculateBulk(items []CorrectionInput, table *RateTable, today time.Time) BulkResult {
	result := BulkResult{}
	for i, item := range items {
		correction, err := Calculate(item, table, today)
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, BulkItemError{Index: i, CreditID: item.CreditID, Err: err})
			continue
		}
		result.SuccessCount++
		result.Corrections = append(result.Corrections, correction)
	}
	return result
}
