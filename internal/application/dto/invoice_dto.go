package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID    string          `json:"client_id"`
	Number      string          `json:"number,omitempty"` // vazio = gerado
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IssueDate   string          `json:"issue_date,omitempty"` // vazio = hoje
	DueDate     string          `json:"due_date"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id (campos opcionais).
type UpdateInvoiceRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DueDate     *string          `json:"due_date,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// InvoiceResponse fatura em respostas.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Number      string          `json:"number"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IssueDate   string          `json:"issue_date"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}
