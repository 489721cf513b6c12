package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get retornan (nil, nil) si el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
