package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-ventas/internal/application/usecase"
)

// ReportHandler maneja los reportes agregados (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TopClients godoc
// @Summary      Mejores clientes por total en pedidos completados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopClientResponse
// @Router       /api/reports/top-clients [get]
func (h *ReportHandler) TopClients(c *fiber.Ctx) error {
	out, err := h.uc.TopClients(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TopSellers godoc
// @Summary      Mejores vendedores por total en pedidos completados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopSellerResponse
// @Router       /api/reports/top-sellers [get]
func (h *ReportHandler) TopSellers(c *fiber.Ctx) error {
	out, err := h.uc.TopSellers(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
