package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculateCorrectionRequest body para POST /api/corrections/calculate.
type CalculateCorrectionRequest struct {
	CreditID   string          `json:"credit_id,omitempty"`
	ClientID   string          `json:"client_id,omitempty"`
	ClientName string          `json:"client_name,omitempty"`
	Value      decimal.Decimal `json:"value"`
	Date       string          `json:"date"` // DD/MM/AAAA ou ISO 8601
	// Persist controla se o resultado entra no histórico (padrão true).
	Persist *bool `json:"persist,omitempty"`
}

// BulkCorrectionItem item de POST /api/corrections/calculate-bulk.
type BulkCorrectionItem struct {
	ID         string          `json:"id,omitempty"` // id do crédito, quando houver
	ClientID   string          `json:"client_id,omitempty"`
	ClientName string          `json:"client_name,omitempty"`
	Value      decimal.Decimal `json:"value"`
	Date       string          `json:"date"`
}

// BulkCorrectionRequest body do cálculo em lote.
type BulkCorrectionRequest struct {
	Items   []BulkCorrectionItem `json:"items"`
	Persist *bool                `json:"persist,omitempty"`
}

// CorrectionResponse atualização monetária em respostas.
type CorrectionResponse struct {
	ID              string          `json:"id"`
	CreditID        string          `json:"credit_id,omitempty"`
	ClientID        string          `json:"client_id,omitempty"`
	ClientName      string          `json:"client_name,omitempty"`
	OriginalValue   decimal.Decimal `json:"original_value"`
	CorrectedValue  decimal.Decimal `json:"corrected_value"`
	Difference      decimal.Decimal `json:"difference"`
	AccumulatedRate decimal.Decimal `json:"accumulated_rate"`
	Months          int             `json:"months"`
	PartialData     bool            `json:"partial_data,omitempty"`
	CorrectionDate  time.Time       `json:"correction_date"`
}

// BulkCorrectionError erro individual de um item do lote.
type BulkCorrectionError struct {
	Index    int    `json:"index"`
	CreditID string `json:"credit_id,omitempty"`
	Message  string `json:"message"`
}

// BulkCorrectionResponse resultado do lote com contagens de sucesso/erro.
type BulkCorrectionResponse struct {
	Corrections  []CorrectionResponse  `json:"corrections"`
	SuccessCount int                   `json:"success_count"`
	ErrorCount   int                   `json:"error_count"`
	Errors       []BulkCorrectionError `json:"errors,omitempty"`
}

// SelicRateDTO taxa mensal na API.
type SelicRateDTO struct {
	Month int             `json:"month"`
	Year  int             `json:"year"`
	Rate  decimal.Decimal `json:"rate"`
	// Accumulated preenchido nas listagens (acumulado até o mês).
	Accumulated decimal.Decimal `json:"accumulated,omitempty"`
}

// UpsertRatesRequest body para PUT /api/selic/rates.
type UpsertRatesRequest struct {
	Rates []SelicRateDTO `json:"rates"`
}

// SyncRatesResponse resultado de POST /api/selic/rates/sync.
type SyncRatesResponse struct {
	Imported int `json:"imported"`
}
