package dto

import "github.com/shopspring/decimal"

// TopClientResponse cliente con mayor total en pedidos completados.
type TopClientResponse struct {
	ClientID string          `json:"client_id"`
	Name     string          `json:"name"`
	Surname  string          `json:"surname"`
	Company  string          `json:"company"`
	Email    string          `json:"email"`
	Total    decimal.Decimal `json:"total"`
}

// TopSellerResponse vendedor con mayor total en pedidos completados.
type TopSellerResponse struct {
	SellerID string          `json:"seller_id"`
	Name     string          `json:"name"`
	Surname  string          `json:"surname"`
	Email    string          `json:"email"`
	Total    decimal.Decimal `json:"total"`
}
