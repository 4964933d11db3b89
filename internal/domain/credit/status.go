// Package credit define o ciclo de vida de status do crédito tributário.
//
// O status é um enum fechado com um único ponto de normalização (Normalize):
// qualquer valor vindo de fora (HTTP, base, importação) passa por aqui antes
// de comparação ou gravação, eliminando case-folding espalhado.
package credit

import (
	"strings"

	"github.com/gestorfiscal/creditos-api/internal/domain"
)

// Status estado canônico (minúsculo) de um crédito tributário.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAnalyzing Status = "analyzing"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusRecovered Status = "recovered"
)

// All devolve os status válidos em ordem de fluxo usual.
func All() []Status {
	return []Status{StatusPending, StatusAnalyzing, StatusApproved, StatusRejected, StatusRecovered}
}

// Normalize converte a entrada para o token canônico minúsculo.
// Retorna ErrMissingStatus para vazio e ErrInvalidStatus para valores fora do enum.
func Normalize(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", domain.ErrMissingStatus
	}
	st := Status(strings.ToLower(trimmed))
	switch st {
	case StatusPending, StatusAnalyzing, StatusApproved, StatusRejected, StatusRecovered:
		return st, nil
	}
	return "", domain.ErrInvalidStatus
}

// TransitionAllowed é o ponto único de política de transição.
// Hoje o fluxo é total (qualquer status -> qualquer status), permitindo
// correção manual pelo operador; substituir por uma tabela dirigida exige
// alterar apenas esta função.
func TransitionAllowed(from, to Status) bool {
	_ = from
	_ = to
	return true
}
