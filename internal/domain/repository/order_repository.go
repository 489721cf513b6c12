package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Create y Update persisten cabecera y líneas; GetByID retorna (nil, nil) si no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// Update actualiza la cabecera; si replaceItems es true, reemplaza también las líneas.
	Update(order *entity.Order, replaceItems bool) error
	Delete(id string) error
	ListBySeller(sellerID string) ([]*entity.Order, error)
	ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error)
	ListAll() ([]*entity.Order, error)
}
