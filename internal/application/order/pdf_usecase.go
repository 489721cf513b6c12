package order

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// ReceiptLine línea del pedido enriquecida con el nombre del producto para el PDF.
type ReceiptLine struct {
	ProductName string
	Item        entity.OrderItem
}

// ReceiptPDFGenerator puerto de generación de la nota de pedido en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, o *entity.Order, seller *entity.User, client *entity.Client, lines []ReceiptLine) ([]byte, error)
}

// PDFUseCase genera la representación PDF de un pedido del vendedor.
type PDFUseCase struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// GenerateReceipt arma los datos del pedido (solo para su dueño) y genera el PDF.
func (uc *PDFUseCase) GenerateReceipt(ctx context.Context, sellerID, orderID string) ([]byte, error) {
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
	client, err := uc.clientRepo.GetByID(o.ClientID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(o.SellerID)
	if err != nil {
		return nil, err
	}
	lines := make([]ReceiptLine, len(o.Items))
	for i, it := range o.Items {
		name := it.ProductID // respaldo si el producto fue eliminado
		if p, err := uc.productRepo.GetByID(it.ProductID); err == nil && p != nil {
			name = p.Name
		}
		lines[i] = ReceiptLine{ProductName: name, Item: it}
	}
	return uc.generator.GenerateReceiptPDF(ctx, o, seller, client, lines)
}
