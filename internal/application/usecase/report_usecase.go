package usecase

import (
	"context"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// Límites de los reportes (los mismos de las agregaciones originales).
const (
	topClientsLimit = 10
	topSellersLimit = 3
)

// ReportUseCase reportes de solo lectura sobre pedidos completados.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// TopClients los 10 clientes con mayor total en pedidos completados.
func (uc *ReportUseCase) TopClients(ctx context.Context) ([]dto.TopClientResponse, error) {
	rows, err := uc.repo.TopClients(ctx, topClientsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopClientResponse, len(rows))
	for i, r := range rows {
		out[i] = dto.TopClientResponse{
			ClientID: r.ClientID,
			Name:     r.Name,
			Surname:  r.Surname,
			Company:  r.Company,
			Email:    r.Email,
			Total:    r.Total,
		}
	}
	return out, nil
}

// TopSellers los 3 vendedores con mayor total en pedidos completados.
func (uc *ReportUseCase) TopSellers(ctx context.Context) ([]dto.TopSellerResponse, error) {
	rows, err := uc.repo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellerResponse, len(rows))
	for i, r := range rows {
		out[i] = dto.TopSellerResponse{
			SellerID: r.SellerID,
			Name:     r.Name,
			Surname:  r.Surname,
			Email:    r.Email,
			Total:    r.Total,
		}
	}
	return out, nil
}
