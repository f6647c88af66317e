package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante AFIP admitidos.
const (
	ComprobanteA = "A"
	ComprobanteB = "B"
	ComprobanteC = "C"
	ComprobanteM = "M"
	ComprobanteE = "E"
)

// Estados del ciclo de vida de una factura.
const (
	EstadoEmitida = "emitida"
	EstadoPagada  = "pagada"
	EstadoVencida = "vencida"
	EstadoAnulada = "anulada"
)

// TiposComprobanteValidos y EstadosValidos definen los conjuntos permitidos.
var (
	TiposComprobanteValidos = map[string]bool{
		ComprobanteA: true, ComprobanteB: true, ComprobanteC: true,
		ComprobanteM: true, ComprobanteE: true,
	}
	EstadosValidos = map[string]bool{
		EstadoEmitida: true, EstadoPagada: true,
		EstadoVencida: true, EstadoAnulada: true,
	}
)

// Factura es el comprobante fiscal emitido a partir de una prefactura.
// El esquema persiste una sola línea a nivel de documento: Cantidad y
// ValorUnitario corresponden al primer ítem del formulario de carga, y los
// totales derivados se recalculan siempre en el servidor (ver DESIGN.md sobre
// la limitación de línea única).
type Factura struct {
	ID                  string
	TipoComprobante     string
	PuntoVenta          string
	NumeroComprobante   string
	FechaEmision        time.Time
	ClienteID           string
	PrefacturaID        string
	CondicionVenta      string
	Cantidad            decimal.Decimal
	ValorUnitario       decimal.Decimal
	Subtotal            decimal.Decimal
	IVA                 decimal.Decimal
	Total               decimal.Decimal
	CAE                 string
	FechaVencimientoCAE time.Time
	Observaciones       string
	Estado              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FacturaPatch describe una actualización parcial: solo los campos no nulos
// se escriben; los demás quedan intactos en la fila.
type FacturaPatch struct {
	TipoComprobante     *string
	PuntoVenta          *string
	NumeroComprobante   *string
	FechaEmision        *time.Time
	ClienteID           *string
	PrefacturaID        *string
	CondicionVenta      *string
	Cantidad            *decimal.Decimal
	ValorUnitario       *decimal.Decimal
	Subtotal            *decimal.Decimal
	IVA                 *decimal.Decimal
	Total               *decimal.Decimal
	CAE                 *string
	FechaVencimientoCAE *time.Time
	Observaciones       *string
	Estado              *string
}

// Empty indica si el patch no contiene ningún campo a escribir.
func (p *FacturaPatch) Empty() bool {
	return p.TipoComprobante == nil && p.PuntoVenta == nil && p.NumeroComprobante == nil &&
		p.FechaEmision == nil && p.ClienteID == nil && p.PrefacturaID == nil &&
		p.CondicionVenta == nil && p.Cantidad == nil && p.ValorUnitario == nil &&
		p.Subtotal == nil && p.IVA == nil && p.Total == nil && p.CAE == nil &&
		p.FechaVencimientoCAE == nil && p.Observaciones == nil && p.Estado == nil
}
