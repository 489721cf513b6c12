package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido en la petición. El precio unitario se
// congela desde el producto al reservar; el total lo calcula el servidor.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	ClientID string             `json:"client_id" validate:"required,uuid"`
	Status   string             `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest entrada para actualizar un pedido. Si Items es nil no se
// toca el inventario y solo cambian estado/cliente.
type UpdateOrderRequest struct {
	ClientID string             `json:"client_id"`
	Status   string             `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	Items    []OrderItemRequest `json:"items"`
}

// OrderItemResponse línea de pedido en la respuesta.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        string              `json:"id"`
	SellerID  string              `json:"seller_id"`
	ClientID  string              `json:"client_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
