package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes de ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TopClients agrupa pedidos completados por cliente y ordena por total vendido.
func (r *ReportRepo) TopClients(ctx context.Context, limit int) ([]repository.TopClientResult, error) {
	const query = `
		SELECT c.id, c.name, c.surname, c.company, c.email, SUM(o.total) AS total
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status = $1
		GROUP BY c.id, c.name, c.surname, c.company, c.email
		ORDER BY total DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, domain.NewStorageError("report top clients", err)
	}
	defer rows.Close()

	var results []repository.TopClientResult
	for rows.Next() {
		var row repository.TopClientResult
		if err := rows.Scan(&row.ClientID, &row.Name, &row.Surname, &row.Company, &row.Email, &row.Total); err != nil {
			return nil, domain.NewStorageError("scan top client", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("report top clients", err)
	}
	return results, nil
}

// TopSellers agrupa pedidos completados por vendedor y ordena por total vendido.
func (r *ReportRepo) TopSellers(ctx context.Context, limit int) ([]repository.TopSellerResult, error) {
	const query = `
		SELECT u.id, u.name, u.surname, u.email, SUM(o.total) AS total
		FROM orders o
		JOIN users u ON u.id = o.seller_id
		WHERE o.status = $1
		GROUP BY u.id, u.name, u.surname, u.email
		ORDER BY total DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, domain.NewStorageError("report top sellers", err)
	}
	defer rows.Close()

	var results []repository.TopSellerResult
	for rows.Next() {
		var row repository.TopSellerResult
		if err := rows.Scan(&row.SellerID, &row.Name, &row.Surname, &row.Email, &row.Total); err != nil {
			return nil, domain.NewStorageError("scan top seller", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("report top sellers", err)
	}
	return results, nil
}
