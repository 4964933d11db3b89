package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de fatura.
const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusPaid     = "paid"
	InvoiceStatusOverdue  = "overdue"
	InvoiceStatusCanceled = "canceled"
)

// Invoice fatura de honorários pela recuperação de créditos de um cliente.
type Invoice struct {
	ID          string
	ClientID    string
	ClientName  string
	Number      string
	Description string
	Amount      decimal.Decimal
	IssueDate   time.Time
	DueDate     time.Time
	Status      string // pending | paid | overdue | canceled
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
