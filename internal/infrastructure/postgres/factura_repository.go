package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `id, tipo_comprobante, punto_venta, numero_comprobante, fecha_emision,
		cliente_id, prefactura_id, condicion_venta, cantidad, valor_unitario,
		subtotal, iva, total, cae, fecha_vencimiento_cae, observaciones, estado,
		created_at, updated_at`

// Create persiste una factura nueva.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (` + facturaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.TipoComprobante, f.PuntoVenta, f.NumeroComprobante, f.FechaEmision,
		f.ClienteID, f.PrefacturaID, f.CondicionVenta, f.Cantidad, f.ValorUnitario,
		f.Subtotal, f.IVA, f.Total, f.CAE, f.FechaVencimientoCAE, f.Observaciones, f.Estado,
		f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas WHERE id = $1`
	var f entity.Factura
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.TipoComprobante, &f.PuntoVenta, &f.NumeroComprobante, &f.FechaEmision,
		&f.ClienteID, &f.PrefacturaID, &f.CondicionVenta, &f.Cantidad, &f.ValorUnitario,
		&f.Subtotal, &f.IVA, &f.Total, &f.CAE, &f.FechaVencimientoCAE, &f.Observaciones, &f.Estado,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &f, nil
}

// List lista facturas, más recientes primero.
func (r *FacturaRepo) List(filter repository.FacturaFilter) ([]*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas`
	var conds []string
	var args []any
	if filter.ClienteID != "" {
		args = append(args, filter.ClienteID)
		conds = append(conds, fmt.Sprintf("cliente_id = $%d", len(args)))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY fecha_emision DESC, created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		if err := rows.Scan(
			&f.ID, &f.TipoComprobante, &f.PuntoVenta, &f.NumeroComprobante, &f.FechaEmision,
			&f.ClienteID, &f.PrefacturaID, &f.CondicionVenta, &f.Cantidad, &f.ValorUnitario,
			&f.Subtotal, &f.IVA, &f.Total, &f.CAE, &f.FechaVencimientoCAE, &f.Observaciones, &f.Estado,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update aplica una actualización parcial: el SET se arma solo con los campos
// presentes en el patch, el resto de la fila queda intacto.
func (r *FacturaRepo) Update(id string, patch *entity.FacturaPatch) error {
	if patch.Empty() {
		return nil
	}
	var sets []string
	args := []any{id}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.TipoComprobante != nil {
		set("tipo_comprobante", *patch.TipoComprobante)
	}
	if patch.PuntoVenta != nil {
		set("punto_venta", *patch.PuntoVenta)
	}
	if patch.NumeroComprobante != nil {
		set("numero_comprobante", *patch.NumeroComprobante)
	}
	if patch.FechaEmision != nil {
		set("fecha_emision", *patch.FechaEmision)
	}
	if patch.ClienteID != nil {
		set("cliente_id", *patch.ClienteID)
	}
	if patch.PrefacturaID != nil {
		set("prefactura_id", *patch.PrefacturaID)
	}
	if patch.CondicionVenta != nil {
		set("condicion_venta", *patch.CondicionVenta)
	}
	if patch.Cantidad != nil {
		set("cantidad", *patch.Cantidad)
	}
	if patch.ValorUnitario != nil {
		set("valor_unitario", *patch.ValorUnitario)
	}
	if patch.Subtotal != nil {
		set("subtotal", *patch.Subtotal)
	}
	if patch.IVA != nil {
		set("iva", *patch.IVA)
	}
	if patch.Total != nil {
		set("total", *patch.Total)
	}
	if patch.CAE != nil {
		set("cae", *patch.CAE)
	}
	if patch.FechaVencimientoCAE != nil {
		set("fecha_vencimiento_cae", *patch.FechaVencimientoCAE)
	}
	if patch.Observaciones != nil {
		set("observaciones", *patch.Observaciones)
	}
	if patch.Estado != nil {
		set("estado", *patch.Estado)
	}
	set("updated_at", time.Now())

	query := `UPDATE facturas SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *FacturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}
