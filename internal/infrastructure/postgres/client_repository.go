package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, surname, company, email, phone, seller_id, created_at, updated_at`

// Create persiste un nuevo cliente con su vendedor dueño.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Surname, client.Company, client.Email,
		client.Phone, client.SellerID, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrClientAlreadyExists
		}
		return domain.NewStorageError("insert client", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByEmail obtiene un cliente por email.
func (r *ClientRepo) GetByEmail(email string) (*entity.Client, error) {
	return r.getBy(`WHERE email = $1`, email)
}

func (r *ClientRepo) getBy(where string, arg any) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ` + where
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone,
		&c.SellerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("get client", err)
	}
	return &c, nil
}

// Update actualiza un cliente. SellerID nunca cambia.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, surname = $3, company = $4, email = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Surname, client.Company, client.Email,
		client.Phone, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrClientAlreadyExists
		}
		return domain.NewStorageError("update client", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return domain.NewStorageError("delete client", err)
	}
	return nil
}

// ListBySeller lista los clientes de un vendedor.
func (r *ClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.list(query, sellerID)
}

// ListAll lista todos los clientes.
func (r *ClientRepo) ListAll() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`
	return r.list(query)
}

func (r *ClientRepo) list(query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, domain.NewStorageError("list clients", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Company, &c.Email, &c.Phone,
			&c.SellerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, domain.NewStorageError("scan client", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list clients", err)
	}
	return list, nil
}
