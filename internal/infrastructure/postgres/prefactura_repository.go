package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

var _ repository.PrefacturaRepository = (*PrefacturaRepo)(nil)

// PrefacturaRepo implementación de PrefacturaRepository (usable con pool o tx).
type PrefacturaRepo struct {
	q Querier
}

// NewPrefacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrefacturaRepository(q Querier) *PrefacturaRepo {
	return &PrefacturaRepo{q: q}
}

const prefacturaColumns = `id, cliente_id, fecha, concepto, descripcion, cantidad, created_at, updated_at`

// Create persiste una prefactura nueva.
func (r *PrefacturaRepo) Create(p *entity.Prefactura) error {
	query := `
		INSERT INTO prefacturas (` + prefacturaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.Fecha, p.Concepto, p.Descripcion, p.Cantidad, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prefactura: %w", err)
	}
	return nil
}

// GetByID obtiene una prefactura por ID.
func (r *PrefacturaRepo) GetByID(id string) (*entity.Prefactura, error) {
	query := `SELECT ` + prefacturaColumns + ` FROM prefacturas WHERE id = $1`
	var p entity.Prefactura
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClienteID, &p.Fecha, &p.Concepto, &p.Descripcion, &p.Cantidad, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prefactura: %w", err)
	}
	return &p, nil
}

// List lista prefacturas, más recientes primero.
func (r *PrefacturaRepo) List(filter repository.PrefacturaFilter) ([]*entity.Prefactura, error) {
	query := `SELECT ` + prefacturaColumns + ` FROM prefacturas`
	var args []any
	if filter.ClienteID != "" {
		args = append(args, filter.ClienteID)
		query += fmt.Sprintf(` WHERE cliente_id = $%d`, len(args))
	}
	if filter.Concepto != "" {
		args = append(args, filter.Concepto)
		if len(args) == 1 {
			query += ` WHERE`
		} else {
			query += ` AND`
		}
		query += fmt.Sprintf(` concepto = $%d`, len(args))
	}
	query += ` ORDER BY fecha DESC, created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prefacturas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Prefactura
	for rows.Next() {
		var p entity.Prefactura
		if err := rows.Scan(
			&p.ID, &p.ClienteID, &p.Fecha, &p.Concepto, &p.Descripcion, &p.Cantidad, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prefactura: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza el registro completo.
func (r *PrefacturaRepo) Update(p *entity.Prefactura) error {
	query := `
		UPDATE prefacturas SET cliente_id = $2, fecha = $3, concepto = $4,
			descripcion = $5, cantidad = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.Fecha, p.Concepto, p.Descripcion, p.Cantidad, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update prefactura: %w", err)
	}
	return nil
}

// Delete elimina una prefactura por ID. Las facturas que la referencian no se tocan.
func (r *PrefacturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM prefacturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prefactura: %w", err)
	}
	return nil
}
