package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	ErrMissingID      = errors.New("identificador do crédito ausente")
	ErrMissingStatus  = errors.New("novo status ausente")
	ErrInvalidStatus  = errors.New("status de crédito inválido")
	ErrInvalidPeriod  = errors.New("período fiscal inválido: fim anterior ao início")
	ErrInvalidCredit  = errors.New("tipo de crédito tributário inválido")
)
