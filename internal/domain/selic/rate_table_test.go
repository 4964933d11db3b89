package selic_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorfiscal/creditos-api/internal/domain/selic"
)

// ──────────────────────────────────────────────────────────────────────────────
// helpers
// ──────────────────────────────────────────────────────────────────────────────

// flatRates gera n meses consecutivos com a mesma taxa, a partir de jan/2025.
func flatRates(n int, rate string) []selic.PeriodicRate {
	r := decimal.RequireFromString(rate)
	out := make([]selic.PeriodicRate, 0, n)
	month, year := 1, 2025
	for i := 0; i < n; i++ {
		out = append(out, selic.PeriodicRate{Month: month, Year: year, Rate: r})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

// TestBuild_InvarianteAcumulado valida a invariante central da tabela:
// acumulado[i] = taxa[i] + acumulado[i-1], com acumulado[0] = taxa[0].
func TestBuild_InvarianteAcumulado(t *testing.T) {
	rates := []selic.PeriodicRate{
		{Month: 10, Year: 2024, Rate: decimal.RequireFromString("0.93")},
		{Month: 11, Year: 2024, Rate: decimal.RequireFromString("0.79")},
		{Month: 12, Year: 2024, Rate: decimal.RequireFromString("0.93")},
		{Month: 1, Year: 2025, Rate: decimal.RequireFromString("1.01")},
	}
	table, err := selic.Build(rates)
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 4)

	assert.True(t, entries[0].AccumulatedRate.Equal(rates[0].Rate),
		"acumulado[0] deve ser igual à taxa[0]")
	for i := 1; i < len(entries); i++ {
		want := entries[i-1].AccumulatedRate.Add(rates[i].Rate)
		assert.True(t, entries[i].AccumulatedRate.Equal(want),
			"acumulado[%d] deve ser taxa[%d] + acumulado[%d]", i, i, i-1)
	}
}

func TestBuild_MesAnoRepetidoRejeitado(t *testing.T) {
	rates := []selic.PeriodicRate{
		{Month: 3, Year: 2025, Rate: decimal.RequireFromString("0.75")},
		{Month: 3, Year: 2025, Rate: decimal.RequireFromString("0.80")},
	}
	_, err := selic.Build(rates)
	assert.ErrorIs(t, err, selic.ErrInvalidSequence, "(mês, ano) repetido deve ser rejeitado")
}

func TestBuild_ForaDeOrdemCronologicaRejeitado(t *testing.T) {
	rates := []selic.PeriodicRate{
		{Month: 4, Year: 2025, Rate: decimal.RequireFromString("0.75")},
		{Month: 3, Year: 2025, Rate: decimal.RequireFromString("0.80")},
	}
	_, err := selic.Build(rates)
	assert.ErrorIs(t, err, selic.ErrInvalidSequence, "retrocesso cronológico deve ser rejeitado")
}

func TestBuild_MesForaDoIntervaloRejeitado(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, err := selic.Build([]selic.PeriodicRate{{Month: m, Year: 2025, Rate: decimal.New(1, 0)}})
		assert.ErrorIs(t, err, selic.ErrInvalidSequence, "mês %d deve ser rejeitado", m)
	}
}

func TestBuild_VaziaEhValida(t *testing.T) {
	table, err := selic.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Latest / AccumulatedFor
// ──────────────────────────────────────────────────────────────────────────────

func TestLatest_DevolveMaisRecente(t *testing.T) {
	table, err := selic.Build(flatRates(3, "0.50"))
	require.NoError(t, err)

	latest, err := table.Latest()
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Month)
	assert.Equal(t, 2025, latest.Year)
	assert.True(t, latest.AccumulatedRate.Equal(decimal.RequireFromString("1.50")))
}

func TestLatest_TabelaVaziaRetornaErro(t *testing.T) {
	table, err := selic.Build(nil)
	require.NoError(t, err)

	_, err = table.Latest()
	assert.ErrorIs(t, err, selic.ErrEmptyTable)
}

func TestAccumulatedFor_JanelaDentroDaTabela(t *testing.T) {
	table, err := selic.Build(flatRates(6, "0.75"))
	require.NoError(t, err)

	rate, partial, err := table.AccumulatedFor(4)
	require.NoError(t, err)
	assert.False(t, partial)
	assert.True(t, rate.Equal(decimal.RequireFromString("3.00")),
		"4 meses a 0.75%% devem acumular 3.00%%")
}

// TestAccumulatedFor_FallbackParcial: janela maior que a cobertura devolve o
// acumulado da entrada mais antiga disponível com aviso parcial — nunca erro.
func TestAccumulatedFor_FallbackParcial(t *testing.T) {
	table, err := selic.Build(flatRates(3, "0.50"))
	require.NoError(t, err)

	rate, partial, err := table.AccumulatedFor(12)
	require.NoError(t, err, "janela além da cobertura não deve falhar")
	assert.True(t, partial, "deve sinalizar dado parcial")
	assert.True(t, rate.Equal(decimal.RequireFromString("1.50")),
		"deve usar o acumulado da última entrada disponível (índice 2)")
}

func TestAccumulatedFor_TabelaVaziaRetornaErro(t *testing.T) {
	table, err := selic.Build(nil)
	require.NoError(t, err)

	_, _, err = table.AccumulatedFor(1)
	assert.ErrorIs(t, err, selic.ErrEmptyTable)
}

func TestAccumulatedFor_JanelaMenorQueUmMesRejeitada(t *testing.T) {
	table, err := selic.Build(flatRates(3, "0.50"))
	require.NoError(t, err)

	_, _, err = table.AccumulatedFor(0)
	assert.ErrorIs(t, err, selic.ErrPeriodTooShort)
}

// TestEntries_CopiaImutavel: mutar o slice devolvido não afeta a tabela.
func TestEntries_CopiaImutavel(t *testing.T) {
	table, err := selic.Build(flatRates(2, "1.00"))
	require.NoError(t, err)

	entries := table.Entries()
	entries[0].AccumulatedRate = decimal.RequireFromString("999")

	fresh := table.Entries()
	assert.True(t, fresh[0].AccumulatedRate.Equal(decimal.RequireFromString("1.00")),
		"a tabela deve permanecer imutável após Build")
}
