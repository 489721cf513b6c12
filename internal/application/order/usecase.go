package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/inventory"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// OrderUseCase orquesta el flujo de pedidos: validación de propiedad del
// cliente, reserva de inventario por línea y persistencia del pedido, todo
// dentro de una transacción con Commit/Rollback.
type OrderUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, clientRepo: clientRepo, orderRepo: orderRepo}
}

// Create crea un pedido. Pasos: (1) el cliente existe y pertenece al vendedor
// — antes de tocar inventario, cero efectos si falla; (2) en una transacción:
// reservar todas las líneas, calcular el total y persistir cabecera + líneas.
func (uc *OrderUseCase) Create(ctx context.Context, sellerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.SellerID, sellerID); err != nil {
		return nil, err
	}

	var created *entity.Order
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		ledger := inventory.NewStockLedger(productRepo)
		priced, err := ledger.ReserveItems(toEntityItems(in.Items))
		if err != nil {
			return err
		}
		now := time.Now()
		o := &entity.Order{
			ID:        uuid.New().String(),
			SellerID:  sellerID,
			ClientID:  client.ID,
			Status:    status,
			Items:     priced,
			CreatedAt: now,
			UpdatedAt: now,
		}
		o.Total = o.ComputeTotal()
		if err := orderRepo.Create(o); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// Update actualiza un pedido. La propiedad se valida contra el cliente
// referenciado (el del payload o el actual del pedido). Si el payload trae
// líneas, la reserva y el reemplazo corren en una transacción; las líneas
// anteriores no devuelven stock. Sin líneas, solo cambian estado y cliente.
func (uc *OrderUseCase) Update(ctx context.Context, sellerID, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	existing, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	clientID := in.ClientID
	if clientID == "" {
		clientID = existing.ClientID
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.SellerID, sellerID); err != nil {
		return nil, err
	}

	if in.Status != "" {
		if !entity.ValidOrderStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		existing.Status = in.Status
	}
	existing.ClientID = client.ID
	existing.UpdatedAt = time.Now()

	if in.Items == nil {
		if err := uc.orderRepo.Update(existing, false); err != nil {
			return nil, err
		}
		return toOrderResponse(existing), nil
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		ledger := inventory.NewStockLedger(productRepo)
		priced, err := ledger.ReserveItems(toEntityItems(in.Items))
		if err != nil {
			return err
		}
		existing.Items = priced
		existing.Total = existing.ComputeTotal()
		return orderRepo.Update(existing, true)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(existing), nil
}

// Delete elimina un pedido del vendedor. No devuelve stock al inventario.
func (uc *OrderUseCase) Delete(ctx context.Context, sellerID, orderID string) error {
	existing, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := domain.RequireOwner(existing.SellerID, sellerID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(orderID)
}

// GetByID obtiene un pedido; solo el vendedor dueño puede verlo.
func (uc *OrderUseCase) GetByID(sellerID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(o.SellerID, sellerID); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// ListBySeller lista los pedidos del vendedor autenticado.
func (uc *OrderUseCase) ListBySeller(sellerID string) ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListByStatus lista los pedidos del vendedor filtrados por estado.
func (uc *OrderUseCase) ListByStatus(sellerID, status string) ([]*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListBySellerAndStatus(sellerID, status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListAll lista todos los pedidos (obtenerPedidos).
func (uc *OrderUseCase) ListAll() ([]*dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func toEntityItems(items []dto.OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, len(items))
	for i, it := range items {
		out[i] = entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal(),
		}
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		SellerID:  o.SellerID,
		ClientID:  o.ClientID,
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
