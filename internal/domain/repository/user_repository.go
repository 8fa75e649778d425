package repository

import (
	"context"

	"github.com/tablesprint/catalog-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. Devuelve domain.ErrEmailAlreadyExists
	// si la restricción UNIQUE(email) lo rechaza.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
