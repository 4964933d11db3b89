package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonetaryCorrection resultado de uma atualização monetária pela SELIC.
// Imutável depois de criado; o histórico é append-only (mais recente primeiro).
type MonetaryCorrection struct {
	ID              string
	CreditID        string
	ClientID        string
	ClientName      string
	OriginalValue   decimal.Decimal
	CorrectedValue  decimal.Decimal
	Difference      decimal.Decimal // CorrectedValue - OriginalValue
	AccumulatedRate decimal.Decimal // percentual acumulado aplicado
	Months          int             // meses inteiros decorridos
	PartialData     bool            // tabela não cobria todo o período; usado o acumulado mais antigo
	CorrectionDate  time.Time
	CreatedAt       time.Time
}
