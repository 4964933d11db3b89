package repository

import (
	"context"

	"github.com/gestorfiscal/creditos-api/internal/domain/entity"
)

// UserRepository porta de persistência para User (auth).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
