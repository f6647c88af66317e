package repository

import "github.com/despachosur/facturacion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// FindByEmail devuelve (nil, nil) cuando el email no está registrado.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
