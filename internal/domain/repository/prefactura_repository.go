package repository

import "github.com/despachosur/facturacion-api/internal/domain/entity"

// PrefacturaFilter filtros de listado de prefacturas.
type PrefacturaFilter struct {
	ClienteID string
	Concepto  string
}

// PrefacturaRepository define el puerto de persistencia para Prefactura.
// GetByID devuelve (nil, nil) cuando el id no existe.
type PrefacturaRepository interface {
	Create(prefactura *entity.Prefactura) error
	GetByID(id string) (*entity.Prefactura, error)
	List(filter PrefacturaFilter) ([]*entity.Prefactura, error)
	Update(prefactura *entity.Prefactura) error
	Delete(id string) error
}
