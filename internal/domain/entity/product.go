package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible. Stock (existencia) es un entero
// no negativo después de cualquier operación confirmada; el descuento se hace
// con un update condicional atómico en la capa de persistencia.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio unitario de venta
	Stock     int             // existencia disponible
	CreatedAt time.Time
	UpdatedAt time.Time
}
