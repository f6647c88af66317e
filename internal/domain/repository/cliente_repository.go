package repository

import "github.com/despachosur/facturacion-api/internal/domain/entity"

// ClienteFilter filtros de listado de clientes.
type ClienteFilter struct {
	Tipo string // "cliente" | "despachante" | "" (todos)
}

// ClienteRepository define el puerto de persistencia para Cliente.
// GetByID devuelve (nil, nil) cuando el id no existe.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCUIT(cuit string) (*entity.Cliente, error)
	List(filter ClienteFilter) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
