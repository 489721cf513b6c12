package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria. SearchByText registra
// el texto recibido para verificar la normalización.
type fakeProductRepo struct {
	products   map[string]*entity.Product
	lastSearch string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { cp := *p; r.products[p.ID] = &cp; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)      { return r.products[id], nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error { cp := *p; r.products[p.ID] = &cp; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.products, id); return nil }

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

func (r *fakeProductRepo) SearchByText(text string, limit int) ([]*entity.Product, error) {
	r.lastSearch = text
	var out []*entity.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), text) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func productoReq(nombre string, stock int) dto.CreateProductRequest {
	return dto.CreateProductRequest{Name: nombre, Price: decimal.NewFromInt(100), Stock: stock}
}

func TestProductCreate_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(productoReq("Teclado", 5))
	require.NoError(t, err)
	assert.Equal(t, "Teclado", out.Name)
	assert.Equal(t, 5, out.Stock)
	assert.NotEmpty(t, out.ID)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1), Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGet_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_StockNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created, err := uc.Create(productoReq("Teclado", 5))
	require.NoError(t, err)

	negativo := -3
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Stock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El ajuste administrativo válido sí aplica
	diez := 10
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: &diez})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Stock)
}

func TestProductDelete(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created, err := uc.Create(productoReq("Teclado", 5))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestProductSearch_NormalizaAcentosYMinusculas(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	_, err := uc.Create(productoReq("Cafetera", 3))
	require.NoError(t, err)

	out, err := uc.Search("CAFÉ")
	require.NoError(t, err)

	// "CAFÉ" se pliega a "cafe" antes de consultar
	assert.Equal(t, "cafe", repo.lastSearch)
	require.Len(t, out, 1)
	assert.Equal(t, "Cafetera", out[0].Name)
}

func TestProductSearch_TextoVacio_InvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Search("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
