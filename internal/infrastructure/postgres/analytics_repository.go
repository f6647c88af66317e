package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetCounts devuelve los totales por colección en una sola consulta.
func (r *AnalyticsRepo) GetCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clientes WHERE tipo = $1),
			(SELECT COUNT(*) FROM clientes WHERE tipo = $2),
			(SELECT COUNT(*) FROM prefacturas),
			(SELECT COUNT(*) FROM facturas)`
	var counts repository.DashboardCounts
	err := r.q.QueryRow(ctx, query, entity.TipoClienteDirecto, entity.TipoDespachante).Scan(
		&counts.Clientes, &counts.Despachantes, &counts.Prefacturas, &counts.Facturas,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &counts, nil
}

// GetFacturacionResumen agrega montos y cantidades de facturas por estado.
// El total facturado excluye anuladas; el pendiente suma emitidas y vencidas.
func (r *AnalyticsRepo) GetFacturacionResumen(ctx context.Context) (*repository.FacturacionResumen, error) {
	query := `
		SELECT estado, COUNT(*), COALESCE(SUM(total), 0)
		FROM facturas GROUP BY estado`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("facturacion resumen: %w", err)
	}
	defer rows.Close()

	resumen := &repository.FacturacionResumen{PorEstado: make(map[string]int64)}
	for rows.Next() {
		var estado string
		var cantidad int64
		var total decimal.Decimal
		if err := rows.Scan(&estado, &cantidad, &total); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		resumen.PorEstado[estado] = cantidad
		if estado != entity.EstadoAnulada {
			resumen.TotalFacturado = resumen.TotalFacturado.Add(total)
		}
		if estado == entity.EstadoEmitida || estado == entity.EstadoVencida {
			resumen.TotalPendiente = resumen.TotalPendiente.Add(total)
		}
	}
	return resumen, rows.Err()
}
