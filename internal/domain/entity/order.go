package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pedido.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus indica si s es un estado de pedido conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem es una línea del pedido: producto, cantidad y precio unitario
// congelado al momento del pedido.
type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal cantidad × precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order representa un pedido: cliente + líneas, con vendedor dueño.
// Invariantes: el cliente referenciado pertenece al mismo vendedor;
// Total es la suma de los subtotales de las líneas (calculado en el workflow).
type Order struct {
	ID        string
	SellerID  string // User dueño
	ClientID  string
	Status    string // PENDING, COMPLETED, CANCELLED
	Total     decimal.Decimal
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeTotal suma los subtotales de las líneas.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
