package entity

import "time"

// Roles de usuário.
const (
	RoleAdmin    = "admin"
	RoleAnalista = "analista"
	RoleConsulta = "consulta"
)

// User usuário do sistema (autenticação e auditoria).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | analista | consulta
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
