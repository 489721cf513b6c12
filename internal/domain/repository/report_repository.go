package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopClientResult total vendido a un cliente (solo pedidos COMPLETED).
type TopClientResult struct {
	ClientID string
	Name     string
	Surname  string
	Company  string
	Email    string
	Total    decimal.Decimal
}

// TopSellerResult total vendido por un vendedor (solo pedidos COMPLETED).
type TopSellerResult struct {
	SellerID string
	Name     string
	Surname  string
	Email    string
	Total    decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes. Sin invariantes
// que preservar: agregaciones pass-through sobre pedidos completados.
type ReportRepository interface {
	TopClients(ctx context.Context, limit int) ([]TopClientResult, error)
	TopSellers(ctx context.Context, limit int) ([]TopSellerResult, error)
}
