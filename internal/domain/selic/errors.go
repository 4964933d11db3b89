package selic

import "errors"

// Erros do motor de atualização monetária.
var (
	ErrInvalidValue    = errors.New("valor principal deve ser positivo")
	ErrInvalidDate     = errors.New("data base inválida: usar DD/MM/AAAA ou ISO 8601")
	ErrFutureDate      = errors.New("data base no futuro")
	ErrPeriodTooShort  = errors.New("período menor que um mês completo")
	ErrInvalidSequence = errors.New("sequência de taxas inválida")
	ErrEmptyTable      = errors.New("tabela de taxas vazia")
)
