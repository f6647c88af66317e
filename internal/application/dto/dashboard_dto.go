package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del panel principal: totales por colección y montos facturados.
type DashboardSummaryDTO struct {
	TotalClientes     int64 `json:"total_clientes"`
	TotalDespachantes int64 `json:"total_despachantes"`
	TotalPrefacturas  int64 `json:"total_prefacturas"`
	TotalFacturas     int64 `json:"total_facturas"`

	// Montos agregados; el total facturado excluye facturas anuladas.
	TotalFacturado decimal.Decimal `json:"total_facturado"`
	TotalPendiente decimal.Decimal `json:"total_pendiente"`

	// Facturas por estado (emitida, pagada, vencida, anulada).
	FacturasPorEstado map[string]int64 `json:"facturas_por_estado"`
}
