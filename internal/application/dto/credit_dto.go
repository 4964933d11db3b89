package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCreditRequest body para POST /api/credits.
// CreditAmount aceita número ou string JSON (decimal.Decimal faz a coerção).
type CreateCreditRequest struct {
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	DocumentNumber string          `json:"document_number"`
	CreditType     string          `json:"credit_type"` // PIS/COFINS | ICMS | IPI | IRRF | CSLL
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	PeriodStart    string          `json:"period_start"` // DD/MM/AAAA ou ISO 8601
	PeriodEnd      string          `json:"period_end"`
	Status         string          `json:"status,omitempty"` // padrão: pending
	Notes          string          `json:"notes,omitempty"`
}

// UpdateCreditRequest body para PUT /api/credits/:id; apenas campos presentes
// são aplicados.
type UpdateCreditRequest struct {
	ClientName     *string          `json:"client_name,omitempty"`
	DocumentNumber *string          `json:"document_number,omitempty"`
	CreditType     *string          `json:"credit_type,omitempty"`
	CreditAmount   *decimal.Decimal `json:"credit_amount,omitempty"`
	PeriodStart    *string          `json:"period_start,omitempty"`
	PeriodEnd      *string          `json:"period_end,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// ChangeStatusRequest body para PATCH /api/credits/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// CreditResponse crédito tributário em respostas.
type CreditResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	DocumentNumber string          `json:"document_number"`
	CreditType     string          `json:"credit_type"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	PeriodStart    string          `json:"period_start"`
	PeriodEnd      string          `json:"period_end"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
}

// CreditListRequest filtros de GET /api/credits.
type CreditListRequest struct {
	PageRequest
	ClientID   string `query:"client_id"`
	Status     string `query:"status"`
	CreditType string `query:"credit_type"`
}
