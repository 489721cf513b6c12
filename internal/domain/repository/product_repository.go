package repository

import "github.com/tu-usuario/crm-ventas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los Get retornan (nil, nil) si el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
	// dentro de una transacción; fuera de una tx es equivalente a GetByID.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
	// DecrementStock resta qty a la existencia solo si stock >= qty, como una
	// única operación indivisible. ok=false cuando la condición no se cumplió
	// (producto inexistente o existencia insuficiente); newStock solo es válido con ok=true.
	DecrementStock(id string, qty int) (newStock int, ok bool, err error)
	// SearchByText búsqueda de texto sobre nombre (máximo limit resultados).
	SearchByText(text string, limit int) ([]*entity.Product, error)
}
