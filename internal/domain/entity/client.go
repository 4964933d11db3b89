package entity

import "time"

// Client representa um cliente do escritório (titular de créditos e faturas).
type Client struct {
	ID        string
	Name      string
	Document  string // CNPJ ou CPF
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
