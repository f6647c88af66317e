package repository

import "github.com/despachosur/facturacion-api/internal/domain/entity"

// FacturaFilter filtros de listado de facturas.
type FacturaFilter struct {
	ClienteID string
	Estado    string
}

// FacturaRepository define el puerto de persistencia para Factura.
// GetByID devuelve (nil, nil) cuando el id no existe. Update aplica solo los
// campos presentes en el patch y no toca el resto de la fila.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	List(filter FacturaFilter) ([]*entity.Factura, error)
	Update(id string, patch *entity.FacturaPatch) error
	Delete(id string) error
}
