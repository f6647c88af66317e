package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, tipo, cuit, razon_social, condicion_iva, domicilio, localidad, rubro,
		razon_social_empresa, domicilio_empresa, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Tipo, c.CUIT, c.RazonSocial, c.CondicionIVA, c.Domicilio, c.Localidad, c.Rubro,
		c.RazonSocialEmpresa, c.DomicilioEmpresa, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE id = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByCUIT obtiene un cliente por CUIT (11 dígitos normalizados).
func (r *ClienteRepo) GetByCUIT(cuit string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes WHERE cuit = $1`
	c, err := scanCliente(r.q.QueryRow(context.Background(), query, cuit))
	if err != nil {
		return nil, fmt.Errorf("get cliente por cuit: %w", err)
	}
	return c, nil
}

// List lista clientes ordenados por razón social, opcionalmente por tipo.
func (r *ClienteRepo) List(filter repository.ClienteFilter) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM clientes`
	var args []any
	if filter.Tipo != "" {
		query += ` WHERE tipo = $1`
		args = append(args, filter.Tipo)
	}
	query += ` ORDER BY razon_social`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.Tipo, &c.CUIT, &c.RazonSocial, &c.CondicionIVA, &c.Domicilio, &c.Localidad, &c.Rubro,
			&c.RazonSocialEmpresa, &c.DomicilioEmpresa, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza el registro completo.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET tipo = $2, cuit = $3, razon_social = $4, condicion_iva = $5,
			domicilio = $6, localidad = $7, rubro = $8, razon_social_empresa = $9,
			domicilio_empresa = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Tipo, c.CUIT, c.RazonSocial, c.CondicionIVA, c.Domicilio, c.Localidad, c.Rubro,
		c.RazonSocialEmpresa, c.DomicilioEmpresa, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. No toca las prefacturas ni facturas que
// lo referencian.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(
		&c.ID, &c.Tipo, &c.CUIT, &c.RazonSocial, &c.CondicionIVA, &c.Domicilio, &c.Localidad, &c.Rubro,
		&c.RazonSocialEmpresa, &c.DomicilioEmpresa, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
