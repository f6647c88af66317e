package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardCounts totales simples de cada colección.
type DashboardCounts struct {
	Clientes     int64
	Despachantes int64
	Prefacturas  int64
	Facturas     int64
}

// FacturacionResumen montos agregados de facturación.
// TotalFacturado excluye facturas anuladas.
type FacturacionResumen struct {
	TotalFacturado decimal.Decimal
	TotalPendiente decimal.Decimal // emitidas + vencidas
	PorEstado      map[string]int64
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetCounts(ctx context.Context) (*DashboardCounts, error)
	GetFacturacionResumen(ctx context.Context) (*FacturacionResumen, error)
}
