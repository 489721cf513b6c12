package dto

import "time"

// CreateClientRequest entrada para crear un cliente. El vendedor dueño
// se asigna desde el token, nunca desde el body.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Surname string `json:"surname" validate:"required,min=1,max=200"`
	Company string `json:"company" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateClientRequest entrada para actualizar un cliente. Campos vacíos no se tocan.
type UpdateClientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	SellerID  string    `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
