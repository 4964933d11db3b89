package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorfiscal/creditos-api/internal/domain/credit"
)

// Tipos de crédito tributário reconhecidos.
const (
	CreditTypePISCOFINS = "PIS/COFINS"
	CreditTypeICMS      = "ICMS"
	CreditTypeIPI       = "IPI"
	CreditTypeIRRF      = "IRRF"
	CreditTypeCSLL      = "CSLL"
)

// ValidCreditType verifica se o tipo informado pertence ao conjunto reconhecido.
func ValidCreditType(t string) bool {
	switch t {
	case CreditTypePISCOFINS, CreditTypeICMS, CreditTypeIPI, CreditTypeIRRF, CreditTypeCSLL:
		return true
	}
	return false
}

// TaxCredit crédito tributário de um cliente, com ciclo de vida de status
// e trilha de auditoria em Notes (append-only).
type TaxCredit struct {
	ID             string
	ClientID       string
	ClientName     string
	DocumentNumber string // número do processo/PER-DCOMP
	CreditType     string // PIS/COFINS | ICMS | IPI | IRRF | CSLL
	CreditAmount   decimal.Decimal
	OriginalAmount decimal.Decimal
	PeriodStart    time.Time
	PeriodEnd      time.Time // >= PeriodStart
	Status         credit.Status
	Notes          string // histórico de alterações de status, nunca sobrescrito
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ApprovedAt     *time.Time // definido apenas na transição para approved
}
