package billing

import (
	"context"

	"github.com/despachosur/facturacion-api/internal/domain/entity"
)

// Emisor datos fiscales del emisor que aparecen en el encabezado del PDF.
type Emisor struct {
	RazonSocial string
	CUIT        string
	Domicilio   string
	Email       string
	Telefono    string
}

// FacturaPDFGenerator genera la representación imprimible de una factura.
// cliente y prefactura pueden venir en nil si fueron eliminados.
type FacturaPDFGenerator interface {
	GenerarFacturaPDF(ctx context.Context, factura *entity.Factura, cliente *entity.Cliente, prefactura *entity.Prefactura) ([]byte, error)
}
