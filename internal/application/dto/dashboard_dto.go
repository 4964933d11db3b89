package dto

import "github.com/shopspring/decimal"

// StatusSummaryDTO agregado por status de crédito.
type StatusSummaryDTO struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DashboardSummaryDTO visão agregada para o painel.
type DashboardSummaryDTO struct {
	TotalCredits     int                  `json:"total_credits"`
	TotalValue       decimal.Decimal      `json:"total_value"`
	ApprovedValue    decimal.Decimal      `json:"approved_value"`
	RecoveredValue   decimal.Decimal      `json:"recovered_value"`
	ByStatus         []StatusSummaryDTO   `json:"by_status"`
	RecentCorrection []CorrectionResponse `json:"recent_corrections"`
}
