package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas y registra el límite solicitado.
type fakeReportRepo struct {
	clients      []repository.TopClientResult
	sellers      []repository.TopSellerResult
	clientsLimit int
	sellersLimit int
	err          error
}

func (f *fakeReportRepo) TopClients(_ context.Context, limit int) ([]repository.TopClientResult, error) {
	f.clientsLimit = limit
	return f.clients, f.err
}

func (f *fakeReportRepo) TopSellers(_ context.Context, limit int) ([]repository.TopSellerResult, error) {
	f.sellersLimit = limit
	return f.sellers, f.err
}

// TopClients debe pedir 10 filas y mapear los resultados al DTO.
func TestReportUseCase_TopClients(t *testing.T) {
	repo := &fakeReportRepo{
		clients: []repository.TopClientResult{
			{ClientID: "c1", Name: "Ana", Surname: "García", Company: "Acme", Email: "ana@acme.com", Total: decimal.NewFromInt(900)},
			{ClientID: "c2", Name: "Luis", Surname: "Pérez", Company: "Beta", Email: "luis@beta.com", Total: decimal.NewFromInt(400)},
		},
	}
	uc := NewReportUseCase(repo)

	out, err := uc.TopClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, repo.clientsLimit, "el reporte de clientes se limita a 10")
	require.Len(t, out, 2)
	assert.Equal(t, "c1", out[0].ClientID)
	assert.Equal(t, "Acme", out[0].Company)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(900)))
}

// TopSellers debe pedir 3 filas y mapear los resultados al DTO.
func TestReportUseCase_TopSellers(t *testing.T) {
	repo := &fakeReportRepo{
		sellers: []repository.TopSellerResult{
			{SellerID: "v1", Name: "Marta", Surname: "Ruiz", Email: "marta@crm.com", Total: decimal.NewFromInt(1500)},
		},
	}
	uc := NewReportUseCase(repo)

	out, err := uc.TopSellers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.sellersLimit, "el reporte de vendedores se limita a 3")
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].SellerID)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(1500)))
}

// Los errores del repositorio se propagan sin traducir.
func TestReportUseCase_ErrorPropagado(t *testing.T) {
	repo := &fakeReportRepo{err: domain.NewStorageError("reporte top clients", context.DeadlineExceeded)}
	uc := NewReportUseCase(repo)

	_, err := uc.TopClients(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}
