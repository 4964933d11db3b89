// Package selic implementa o núcleo de atualização monetária pela taxa SELIC:
// a tabela de taxas mensais com acumulado corrente e o motor de cálculo do
// valor corrigido de um crédito tributário.
package selic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PeriodicRate observação mensal de taxa a alimentar a tabela.
// A ordem de inserção é a ordem cronológica (mais antiga primeiro).
type PeriodicRate struct {
	Month int // 1–12
	Year  int
	Rate  decimal.Decimal // percentual do mês
}

// RateEntry entrada da tabela: taxa do mês e acumulado até o mês.
// Invariante: Accumulated[i] = Rate[i] + Accumulated[i-1]; Accumulated[0] = Rate[0].
type RateEntry struct {
	Month           int
	Year            int
	PeriodicRate    decimal.Decimal
	AccumulatedRate decimal.Decimal
}

// RateTable sequência cronológica de taxas mensais, imutável após Build.
type RateTable struct {
	entries []RateEntry
}

// Build monta a tabela a partir da sequência ordenada de taxas periódicas,
// computando o acumulado da esquerda para a direita.
// Retorna ErrInvalidSequence se algum par (mês, ano) repetir, estiver fora de
// ordem cronológica ou com mês fora de 1–12.
func Build(rates []PeriodicRate) (*RateTable, error) {
	entries := make([]RateEntry, 0, len(rates))
	acc := decimal.Zero
	prevIdx := -1
	for i, r := range rates {
		if r.Month < 1 || r.Month > 12 {
			return nil, fmt.Errorf("%w: mês %d fora de 1–12 na posição %d", ErrInvalidSequence, r.Month, i)
		}
		idx := r.Year*12 + (r.Month - 1)
		if prevIdx >= 0 && idx == prevIdx {
			return nil, fmt.Errorf("%w: (mês, ano) repetido %02d/%d", ErrInvalidSequence, r.Month, r.Year)
		}
		if prevIdx >= 0 && idx < prevIdx {
			return nil, fmt.Errorf("%w: %02d/%d fora de ordem cronológica", ErrInvalidSequence, r.Month, r.Year)
		}
		prevIdx = idx
		acc = acc.Add(r.Rate)
		entries = append(entries, RateEntry{
			Month:           r.Month,
			Year:            r.Year,
			PeriodicRate:    r.Rate,
			AccumulatedRate: acc,
		})
	}
	return &RateTable{entries: entries}, nil
}

// Len devolve a quantidade de meses cobertos pela tabela.
func (t *RateTable) Len() int {
	return len(t.entries)
}

// Entries devolve uma cópia das entradas (a tabela permanece imutável).
func (t *RateTable) Entries() []RateEntry {
	out := make([]RateEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Latest devolve a entrada mais recente, ou ErrEmptyTable se a tabela for vazia.
func (t *RateTable) Latest() (RateEntry, error) {
	if len(t.entries) == 0 {
		return RateEntry{}, ErrEmptyTable
	}
	return t.entries[len(t.entries)-1], nil
}

// AccumulatedFor devolve o acumulado para uma janela retroativa de monthsAgo
// meses. Se monthsAgo exceder a cobertura da tabela, devolve o acumulado da
// entrada mais antiga disponível com partial=true (aviso não fatal; o chamador
// deve registrar/exibir), nunca erro.
func (t *RateTable) AccumulatedFor(monthsAgo int) (rate decimal.Decimal, partial bool, err error) {
	if len(t.entries) == 0 {
		return decimal.Zero, false, ErrEmptyTable
	}
	if monthsAgo < 1 {
		return decimal.Zero, false, ErrPeriodTooShort
	}
	if monthsAgo > len(t.entries) {
		return t.entries[len(t.entries)-1].AccumulatedRate, true, nil
	}
	return t.entries[monthsAgo-1].AccumulatedRate, false, nil
}
