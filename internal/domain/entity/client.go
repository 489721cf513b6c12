package entity

import "time"

// Client representa un cliente de ventas. SellerID es el vendedor dueño:
// se asigna al crear y nunca se reasigna.
type Client struct {
	ID        string
	Name      string
	Surname   string
	Company   string
	Email     string // único
	Phone     string
	SellerID  string // User dueño
	CreatedAt time.Time
	UpdatedAt time.Time
}
