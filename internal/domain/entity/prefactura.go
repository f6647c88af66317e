package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conceptos de una prefactura (operación aduanera).
const (
	ConceptoImportacion = "importacion"
	ConceptoExportacion = "exportacion"
)

// ConceptosValidos conjunto permitido para Prefactura.Concepto.
var ConceptosValidos = map[string]bool{
	ConceptoImportacion: true,
	ConceptoExportacion: true,
}

// Prefactura es el registro preliminar de facturación de un cliente.
// ClienteID debe resolver a un Cliente existente al momento de la lectura;
// las bajas del cliente no se propagan (ver DESIGN.md).
type Prefactura struct {
	ID          string
	ClienteID   string
	Fecha       time.Time
	Concepto    string
	Descripcion string
	Cantidad    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
