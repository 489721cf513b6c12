package order

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la reserva de inventario y la
// escritura del pedido se confirmen o reviertan como una sola operación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
