package inventory

import (
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// StockLedger es el motor de ajuste de existencias: valida cantidades contra
// el stock disponible y lo descuenta por producto. El descuento individual es
// un update condicional atómico ("resta N solo si stock >= N"), de modo que
// dos reservas concurrentes sobre el mismo producto nunca dejan stock negativo.
type StockLedger struct {
	products repository.ProductRepository
}

// NewStockLedger construye el ledger sobre un repositorio de productos
// (atado al pool o a una transacción, según el caller).
func NewStockLedger(products repository.ProductRepository) *StockLedger {
	return &StockLedger{products: products}
}

// Reserve descuenta qty de la existencia del producto y devuelve el stock
// resultante. Producto inexistente -> ErrNotFound; existencia insuficiente ->
// *InsufficientStockError con el faltante y el nombre del producto.
func (l *StockLedger) Reserve(productID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidInput
	}
	newStock, ok, err := l.products.DecrementStock(productID, qty)
	if err != nil {
		return 0, err
	}
	if ok {
		return newStock, nil
	}
	// La condición falló: distinguir producto ausente de stock insuficiente
	product, err := l.products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return 0, &domain.InsufficientStockError{
		ProductName: product.Name,
		Requested:   qty,
		Available:   product.Stock,
	}
}

// ReserveItems reserva todas las líneas de un pedido dentro de la transacción
// del caller. Primera pasada: bloquea cada fila (SELECT FOR UPDATE), valida
// disponibilidad y congela el precio unitario del producto. Segunda pasada:
// aplica todos los descuentos. Si una línea falla, el caller hace rollback y
// ningún descuento queda aplicado.
func (l *StockLedger) ReserveItems(items []entity.OrderItem) ([]entity.OrderItem, error) {
	priced := make([]entity.OrderItem, len(items))
	for i, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := l.products.GetForUpdate(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if it.Quantity > product.Stock {
			return nil, &domain.InsufficientStockError{
				ProductName: product.Name,
				Requested:   it.Quantity,
				Available:   product.Stock,
			}
		}
		priced[i] = entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
		}
	}
	for _, it := range priced {
		if _, ok, err := l.products.DecrementStock(it.ProductID, it.Quantity); err != nil {
			return nil, err
		} else if !ok {
			// Las filas están bloqueadas; si aun así falla, algo externo tocó el stock
			return nil, domain.NewStorageError("descontar stock", domain.ErrInsufficientStock)
		}
	}
	return priced, nil
}
