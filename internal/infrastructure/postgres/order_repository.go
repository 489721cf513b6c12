package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
// Cabecera en orders, líneas en order_items.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste cabecera y líneas del pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, seller_id, client_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SellerID, order.ClientID, order.Status, order.Total,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return domain.NewStorageError("insert order", err)
	}
	return r.insertItems(order)
}

// GetByID obtiene un pedido completo (cabecera + líneas) por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, seller_id, client_id, status, total, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SellerID, &o.ClientID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get order", err)
	}
	if err := r.loadItems(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update actualiza la cabecera; con replaceItems reemplaza también las líneas.
func (r *OrderRepo) Update(order *entity.Order, replaceItems bool) error {
	query := `
		UPDATE orders SET client_id = $2, status = $3, total = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClientID, order.Status, order.Total, order.UpdatedAt,
	)
	if err != nil {
		return domain.NewStorageError("update order", err)
	}
	if !replaceItems {
		return nil
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return domain.NewStorageError("delete order items", err)
	}
	return r.insertItems(order)
}

// Delete elimina un pedido (las líneas caen por FK ON DELETE CASCADE).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return domain.NewStorageError("delete order", err)
	}
	return nil
}

// ListBySeller lista los pedidos de un vendedor.
func (r *OrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, seller_id, client_id, status, total, created_at, updated_at
		FROM orders WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.list(query, sellerID)
}

// ListBySellerAndStatus lista los pedidos de un vendedor filtrados por estado.
func (r *OrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	query := `
		SELECT id, seller_id, client_id, status, total, created_at, updated_at
		FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.list(query, sellerID, status)
}

// ListAll lista todos los pedidos.
func (r *OrderRepo) ListAll() ([]*entity.Order, error) {
	query := `
		SELECT id, seller_id, client_id, status, total, created_at, updated_at
		FROM orders ORDER BY created_at DESC`
	return r.list(query)
}

func (r *OrderRepo) insertItems(order *entity.Order) error {
	query := `
		INSERT INTO order_items (order_id, position, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	for i, it := range order.Items {
		_, err := r.q.Exec(context.Background(), query,
			order.ID, i, it.ProductID, it.Quantity, it.UnitPrice,
		)
		if err != nil {
			return domain.NewStorageError("insert order item", err)
		}
	}
	return nil
}

func (r *OrderRepo) loadItems(o *entity.Order) error {
	query := `
		SELECT product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return domain.NewStorageError("list order items", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return domain.NewStorageError("scan order item", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return domain.NewStorageError("list order items", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, domain.NewStorageError("list orders", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.SellerID, &o.ClientID, &o.Status, &o.Total,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, domain.NewStorageError("scan order", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list orders", err)
	}
	for _, o := range list {
		if err := r.loadItems(o); err != nil {
			return nil, err
		}
	}
	return list, nil
}
