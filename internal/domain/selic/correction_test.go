package selic_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
)

// today fixo para tornar os cálculos determinísticos.
var testToday = time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)

func buildFlatTable(t *testing.T, months int, rate string) *selic.RateTable {
	t.Helper()
	table, err := selic.Build(flatRates(months, rate))
	require.NoError(t, err)
	return table
}

// ──────────────────────────────────────────────────────────────────────────────
// WholeMonthsBetween
// ──────────────────────────────────────────────────────────────────────────────

func TestWholeMonthsBetween_Truncado(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		want int
	}{
		{"seis meses exatos", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 6},
		{"dia ainda não alcançado trunca", time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), 5},
		{"dia ultrapassado não arredonda", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 6},
		{"mesmo dia conta zero", testToday, 0},
		{"virada de ano", time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selic.WholeMonthsBetween(tc.from, testToday))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate
// ──────────────────────────────────────────────────────────────────────────────

// TestCalculate_ExemploReferencia é o vetor de referência do motor:
// principal 50.000,00, base 6 meses atrás, tabela plana de 0,75%/mês
// (acumulado 4,5%) -> corrigido 52.250,00, diferença 2.250,00, 6 meses.
func TestCalculate_ExemploReferencia(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	correction, err := selic.Calculate(selic.CorrectionInput{
		ClientID:   "cli-1",
		ClientName: "Indústria Alfa Ltda",
		Principal:  decimal.RequireFromString("50000.00"),
		BaseDate:   "15/03/2025",
	}, table, testToday)
	require.NoError(t, err)

	assert.Equal(t, 6, correction.Months)
	assert.True(t, correction.AccumulatedRate.Equal(decimal.RequireFromString("4.50")),
		"acumulado de 6 meses a 0,75%% deve ser 4,50%%")
	assert.True(t, correction.CorrectedValue.Equal(decimal.RequireFromString("52250.00")),
		"corrigido deve ser 52.250,00; obtido %s", correction.CorrectedValue)
	assert.True(t, correction.Difference.Equal(decimal.RequireFromString("2250.00")),
		"diferença deve ser 2.250,00; obtido %s", correction.Difference)
	assert.False(t, correction.PartialData)
	assert.NotEmpty(t, correction.ID)
}

// TestCalculate_Monotonicidade: com acumulado >= 0 o corrigido nunca fica
// abaixo do principal, e a diferença fecha exata.
func TestCalculate_Monotonicidade(t *testing.T) {
	table := buildFlatTable(t, 12, "1.10")
	principals := []string{"0.01", "137.55", "50000.00", "999999999.99"}

	for _, p := range principals {
		principal := decimal.RequireFromString(p)
		correction, err := selic.Calculate(selic.CorrectionInput{
			Principal: principal,
			BaseDate:  "15/01/2025",
		}, table, testToday)
		require.NoError(t, err, "principal %s", p)

		assert.True(t, correction.CorrectedValue.GreaterThanOrEqual(principal),
			"corrigido deve ser >= principal para %s", p)
		assert.True(t, correction.Difference.Equal(correction.CorrectedValue.Sub(principal)),
			"diferença deve ser exatamente corrigido - principal para %s", p)
	}
}

func TestCalculate_FormatosDeDataAceitos(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	for _, date := range []string{"15/03/2025", "2025-03-15", "2025-03-15T00:00:00Z"} {
		correction, err := selic.Calculate(selic.CorrectionInput{
			Principal: decimal.RequireFromString("100"),
			BaseDate:  date,
		}, table, testToday)
		require.NoError(t, err, "formato %q deve ser aceito", date)
		assert.Equal(t, 6, correction.Months)
	}
}

func TestCalculate_DataInvalidaRejeitada(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	for _, date := range []string{"", "ontem", "31/02/2025", "2025-13-01", "15-03-2025"} {
		_, err := selic.Calculate(selic.CorrectionInput{
			Principal: decimal.RequireFromString("100"),
			BaseDate:  date,
		}, table, testToday)
		assert.ErrorIs(t, err, selic.ErrInvalidDate, "data %q deve ser rejeitada", date)
	}
}

func TestCalculate_DataFuturaRejeitada(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	tomorrow := testToday.AddDate(0, 0, 1).Format("02/01/2006")
	_, err := selic.Calculate(selic.CorrectionInput{
		Principal: decimal.RequireFromString("100"),
		BaseDate:  tomorrow,
	}, table, testToday)
	assert.ErrorIs(t, err, selic.ErrFutureDate)
}

func TestCalculate_MesmoDiaRejeitado(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	_, err := selic.Calculate(selic.CorrectionInput{
		Principal: decimal.RequireFromString("100"),
		BaseDate:  testToday.Format("02/01/2006"),
	}, table, testToday)
	assert.ErrorIs(t, err, selic.ErrPeriodTooShort, "zero meses decorridos deve ser rejeitado")
}

func TestCalculate_PrincipalNaoPositivoRejeitado(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	for _, p := range []string{"0", "-10.50"} {
		_, err := selic.Calculate(selic.CorrectionInput{
			Principal: decimal.RequireFromString(p),
			BaseDate:  "15/03/2025",
		}, table, testToday)
		assert.ErrorIs(t, err, selic.ErrInvalidValue, "principal %s deve ser rejeitado", p)
	}
}

// TestCalculate_DadoParcialSinalizado: período maior que a cobertura da tabela
// calcula com o melhor acumulado disponível e marca PartialData.
func TestCalculate_DadoParcialSinalizado(t *testing.T) {
	table := buildFlatTable(t, 3, "0.50")

	correction, err := selic.Calculate(selic.CorrectionInput{
		Principal: decimal.RequireFromString("1000.00"),
		BaseDate:  "15/09/2024", // 12 meses atrás, tabela cobre 3
	}, table, testToday)
	require.NoError(t, err)

	assert.True(t, correction.PartialData, "cálculo além da cobertura deve sinalizar dado parcial")
	assert.Equal(t, 12, correction.Months)
	assert.True(t, correction.AccumulatedRate.Equal(decimal.RequireFromString("1.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateBulk
// ──────────────────────────────────────────────────────────────────────────────

// TestCalculateBulk_IsolamentoPorItem: um item ruim (data base = hoje) não
// aborta o lote; os demais calculam normalmente.
func TestCalculateBulk_IsolamentoPorItem(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")

	items := []selic.CorrectionInput{
		{CreditID: "c1", Principal: decimal.RequireFromString("100"), BaseDate: "15/03/2025"},
		{CreditID: "c2", Principal: decimal.RequireFromString("200"), BaseDate: testToday.Format("02/01/2006")},
		{CreditID: "c3", Principal: decimal.RequireFromString("300"), BaseDate: "15/01/2025"},
	}

	result := selic.CalculateBulk(items, table, testToday)

	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.ErrorCount)
	require.Len(t, result.Corrections, 2)
	require.Len(t, result.Errors, 1)

	assert.Equal(t, 1, result.Errors[0].Index, "o item 2 (índice 1) é o que falha")
	assert.Equal(t, "c2", result.Errors[0].CreditID)
	assert.ErrorIs(t, result.Errors[0].Err, selic.ErrPeriodTooShort)
}

func TestCalculateBulk_LoteVazio(t *testing.T) {
	table := buildFlatTable(t, 6, "0.75")
	result := selic.CalculateBulk(nil, table, testToday)

	assert.Zero(t, result.SuccessCount)
	assert.Zero(t, result.ErrorCount)
	assert.Empty(t, result.Corrections)
}
