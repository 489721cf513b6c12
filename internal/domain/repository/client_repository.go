package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
// Los Get retornan (nil, nil) si el registro no existe.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	ListBySeller(sellerID string) ([]*entity.Client, error)
	ListAll() ([]*entity.Client, error)
}
