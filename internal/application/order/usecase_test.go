package order_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/order"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error        { cp := *p; r.products[p.ID] = &cp; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return r.products[id], nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error        { cp := *p; r.products[p.ID] = &cp; return nil }
func (r *fakeProductRepo) Delete(id string) error                { delete(r.products, id); return nil }

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) (int, bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return 0, false, nil
	}
	p.Stock -= qty
	return p.Stock, true, nil
}

func (r *fakeProductRepo) SearchByText(string, int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	out := map[string]entity.Product{}
	for k, v := range r.products {
		out[k] = *v
	}
	return out
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.products = map[string]*entity.Product{}
	for k, v := range snap {
		cp := v
		r.products[k] = &cp
	}
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error { cp := *c; r.clients[c.ID] = &cp; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error { cp := *c; r.clients[c.ID] = &cp; return nil }
func (r *fakeClientRepo) Delete(id string) error        { delete(r.clients, id); return nil }

func (r *fakeClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.SellerID == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) ListAll() ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }

func (r *fakeOrderRepo) Update(o *entity.Order, replaceItems bool) error {
	existing, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *o
	if replaceItems {
		cp.Items = append([]entity.OrderItem(nil), o.Items...)
	} else {
		cp.Items = existing.Items
		cp.Total = existing.Total
	}
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error { delete(r.orders, id); return nil }

func (r *fakeOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID && o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) snapshot() map[string]entity.Order {
	out := map[string]entity.Order{}
	for k, v := range r.orders {
		cp := *v
		cp.Items = append([]entity.OrderItem(nil), v.Items...)
		out[k] = cp
	}
	return out
}

func (r *fakeOrderRepo) restore(snap map[string]entity.Order) {
	r.orders = map[string]*entity.Order{}
	for k, v := range snap {
		cp := v
		r.orders[k] = &cp
	}
}

// fakeTxRunner emula Commit/Rollback: toma un snapshot de ambos repos y lo
// restaura si fn falla, igual que haría la transacción Postgres real.
type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	prodSnap := t.products.snapshot()
	orderSnap := t.orders.snapshot()
	if err := fn(t.products, t.orders); err != nil {
		t.products.restore(prodSnap)
		t.orders.restore(orderSnap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: vendedor A con cliente propio, vendedor B ajeno
// ──────────────────────────────────────────────────────────────────────────────

const (
	sellerA = "aaaaaaaa-0000-0000-0000-000000000001"
	sellerB = "bbbbbbbb-0000-0000-0000-000000000002"
	clientC = "cccccccc-0000-0000-0000-000000000003"
)

type fixture struct {
	uc       *order.OrderUseCase
	products *fakeProductRepo
	orders   *fakeOrderRepo
	clients  *fakeClientRepo
}

func newFixture(products ...*entity.Product) *fixture {
	prodRepo := newFakeProductRepo(products...)
	orderRepo := newFakeOrderRepo()
	clientRepo := newFakeClientRepo(&entity.Client{
		ID: clientC, Name: "Carla", Surname: "Mendoza", Company: "ACME",
		Email: "carla@acme.com", SellerID: sellerA,
	})
	tx := &fakeTxRunner{products: prodRepo, orders: orderRepo}
	return &fixture{
		uc:       order.NewOrderUseCase(tx, clientRepo, orderRepo),
		products: prodRepo,
		orders:   orderRepo,
		clients:  clientRepo,
	}
}

func productoConPrecio(id, nombre string, stock int, precio int64) *entity.Product {
	return &entity.Product{ID: id, Name: nombre, Price: decimal.NewFromInt(precio), Stock: stock}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PedidoValido_DescuentaStockYCalculaTotal(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))

	out, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: clientC,
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, sellerA, out.SellerID)
	assert.Equal(t, clientC, out.ClientID)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "estado por defecto PENDING")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(360)), "total = 3 × 120")
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(120)), "precio congelado del producto")

	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 2, p.Stock, "stock 5 - 3 = 2")

	stored, _ := f.orders.GetByID(out.ID)
	require.NotNil(t, stored, "el pedido debe quedar persistido")
}

func TestCreate_ClienteAjeno_ForbiddenSinEfectos(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))

	_, err := f.uc.Create(context.Background(), sellerB, dto.CreateOrderRequest{
		ClientID: clientC,
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Cero efectos secundarios: nada de inventario reservado, nada persistido
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 5, p.Stock)
	all, _ := f.orders.ListAll()
	assert.Empty(t, all)
}

func TestCreate_ClienteInexistente_NotFound(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))

	_, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: "no-existe",
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_StockInsuficiente_FaltanteYSinCambios(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 2, 120))

	// Pedir 10 contra existencia 2: faltante 8, stock intacto
	_, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: clientC,
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 10}},
	})
	require.Error(t, err)

	var insErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insErr)
	assert.Equal(t, 8, insErr.Shortfall())

	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 2, p.Stock)
}

func TestCreate_FallaLineaPosterior_TransaccionCompletaRevertida(t *testing.T) {
	f := newFixture(
		productoConPrecio("p1", "Teclado", 5, 120),
		productoConPrecio("p2", "Mouse", 1, 50),
	)

	_, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: clientC,
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 4},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Toda la reserva corre en una transacción: la primera línea tampoco queda aplicada
	p1, _ := f.products.GetByID("p1")
	p2, _ := f.products.GetByID("p2")
	assert.Equal(t, 5, p1.Stock)
	assert.Equal(t, 1, p2.Stock)
	all, _ := f.orders.ListAll()
	assert.Empty(t, all)
}

func TestCreate_SinLineas_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{ClientID: clientC})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func crearPedido(t *testing.T, f *fixture, qty int) *dto.OrderResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: clientC,
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: qty}},
	})
	require.NoError(t, err)
	return out
}

func TestUpdate_SoloEstado_NoTocaInventario(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 3) // stock queda en 2

	out, err := f.uc.Update(context.Background(), sellerA, pedido.ID, dto.UpdateOrderRequest{
		Status: entity.OrderStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)

	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 2, p.Stock, "sin líneas nuevas el inventario no cambia")
}

func TestUpdate_ConLineas_RevalidaYReemplaza(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 3) // stock 2

	out, err := f.uc.Update(context.Background(), sellerA, pedido.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Items[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(240)), "total recalculado 2 × 120")

	// Las líneas anteriores no devuelven stock: 2 - 2 = 0
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 0, p.Stock)
}

func TestUpdate_ConLineasSinStock_RollbackCompleto(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 3) // stock 2

	_, err := f.uc.Update(context.Background(), sellerA, pedido.ID, dto.UpdateOrderRequest{
		Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 4}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ni el stock ni el pedido cambian
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 2, p.Stock)
	stored, _ := f.orders.GetByID(pedido.ID)
	assert.Equal(t, 3, stored.Items[0].Quantity)
}

func TestUpdate_ClienteDeOtroVendedor_Forbidden(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 1)

	// La verificación es contra el cliente referenciado, no contra el pedido
	_, err := f.uc.Update(context.Background(), sellerB, pedido.ID, dto.UpdateOrderRequest{
		Status: entity.OrderStatusCancelled,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate_PedidoInexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Update(context.Background(), sellerA, "no-existe", dto.UpdateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_Dueno_EliminaSinDevolverStock(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 3) // stock 2

	err := f.uc.Delete(context.Background(), sellerA, pedido.ID)
	require.NoError(t, err)

	stored, _ := f.orders.GetByID(pedido.ID)
	assert.Nil(t, stored)

	// Eliminar el pedido no restaura la existencia descontada
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, 2, p.Stock)
}

func TestDelete_OtroVendedor_Forbidden(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 1)

	err := f.uc.Delete(context.Background(), sellerB, pedido.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetByID_SoloElDueno(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))
	pedido := crearPedido(t, f, 1)

	out, err := f.uc.GetByID(sellerA, pedido.ID)
	require.NoError(t, err)
	assert.Equal(t, pedido.ID, out.ID)

	_, err = f.uc.GetByID(sellerB, pedido.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListByStatus_FiltraPorVendedorYEstado(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 10, 120))
	crearPedido(t, f, 1)
	pedido2 := crearPedido(t, f, 1)
	_, err := f.uc.Update(context.Background(), sellerA, pedido2.ID, dto.UpdateOrderRequest{
		Status: entity.OrderStatusCompleted,
	})
	require.NoError(t, err)

	completados, err := f.uc.ListByStatus(sellerA, entity.OrderStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completados, 1)
	assert.Equal(t, pedido2.ID, completados[0].ID)

	_, err = f.uc.ListByStatus(sellerA, "INVENTADO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_EstadoInvalido_InvalidInput(t *testing.T) {
	f := newFixture(productoConPrecio("p1", "Teclado", 5, 120))

	_, err := f.uc.Create(context.Background(), sellerA, dto.CreateOrderRequest{
		ClientID: clientC,
		Status:   strings.ToLower(entity.OrderStatusPending), // los estados son mayúsculas cerradas
		Items:    []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
