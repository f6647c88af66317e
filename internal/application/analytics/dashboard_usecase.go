// Package analytics arma los indicadores del dashboard a partir de consultas
// de solo lectura.
package analytics

import (
	"context"

	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// DashboardUseCase agrega los KPIs del panel principal.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve los totales por colección y los montos facturados.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	counts, err := uc.repo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.repo.GetFacturacionResumen(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{
		TotalClientes:     counts.Clientes,
		TotalDespachantes: counts.Despachantes,
		TotalPrefacturas:  counts.Prefacturas,
		TotalFacturas:     counts.Facturas,
		TotalFacturado:    resumen.TotalFacturado,
		TotalPendiente:    resumen.TotalPendiente,
		FacturasPorEstado: resumen.PorEstado,
	}, nil
}
