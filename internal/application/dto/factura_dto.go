package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los payloads de facturas llegan en la convención externa (camelCase) y se
// mapean a la forma de almacenamiento (snake_case) en el caso de uso. Solo los
// campos presentes se mapean: un PUT con únicamente {"estado": "pagada"}
// escribe solo esa columna.

// FacturaRequest body para POST/PUT /api/facturas.
// Las referencias a cliente y prefactura se aceptan en tres formas, con esta
// prioridad: objeto embebido > id camelCase > id snake_case.
// Los totales (subtotal, iva, total) enviados por el cliente se descartan:
// siempre se recalculan en el servidor a partir de cantidad y valor unitario.
type FacturaRequest struct {
	TipoComprobante   *string `json:"tipoComprobante"`
	PuntoVenta        *string `json:"puntoVenta"`
	NumeroComprobante *string `json:"numeroComprobante"`
	FechaEmision      *Fecha  `json:"fechaEmision"`

	Cliente           *Ref    `json:"cliente"`
	ClienteIDCamel    *string `json:"clienteId"`
	ClienteIDSnake    *string `json:"cliente_id"`
	Prefactura        *Ref    `json:"prefactura"`
	PrefacturaIDCamel *string `json:"prefacturaId"`
	PrefacturaIDSnake *string `json:"prefactura_id"`

	CondicionVenta      *string              `json:"condicionVenta"`
	Cantidad            *Monto               `json:"cantidad"`
	ValorUnitario       *Monto               `json:"valorUnitario"`
	CAE                 *string              `json:"cae"`
	FechaVencimientoCAE *Fecha               `json:"fechaVencimientoCae"`
	Observaciones       *string              `json:"observaciones"`
	Estado              *string              `json:"estado"`
	Items               []FacturaItemRequest `json:"items"`
}

// FacturaItemRequest línea del formulario de carga. El esquema persiste una
// sola línea a nivel de documento, por lo que solo el primer ítem determina
// cantidad y valor unitario (ver DESIGN.md).
type FacturaItemRequest struct {
	Descripcion   string `json:"descripcion"`
	Cantidad      *Monto `json:"cantidad"`
	ValorUnitario *Monto `json:"valorUnitario"`
}

// ResolverClienteID aplana la referencia al cliente.
func (r *FacturaRequest) ResolverClienteID() string {
	if r.Cliente != nil && r.Cliente.ID != "" {
		return r.Cliente.ID
	}
	if r.ClienteIDCamel != nil && *r.ClienteIDCamel != "" {
		return *r.ClienteIDCamel
	}
	if r.ClienteIDSnake != nil {
		return *r.ClienteIDSnake
	}
	return ""
}

// ResolverPrefacturaID aplana la referencia a la prefactura.
func (r *FacturaRequest) ResolverPrefacturaID() string {
	if r.Prefactura != nil && r.Prefactura.ID != "" {
		return r.Prefactura.ID
	}
	if r.PrefacturaIDCamel != nil && *r.PrefacturaIDCamel != "" {
		return *r.PrefacturaIDCamel
	}
	if r.PrefacturaIDSnake != nil {
		return *r.PrefacturaIDSnake
	}
	return ""
}

// TieneReferenciaCliente indica si el payload trae alguna forma de referencia al cliente.
func (r *FacturaRequest) TieneReferenciaCliente() bool {
	return r.Cliente != nil || r.ClienteIDCamel != nil || r.ClienteIDSnake != nil
}

// TieneReferenciaPrefactura indica si el payload trae alguna forma de referencia a la prefactura.
func (r *FacturaRequest) TieneReferenciaPrefactura() bool {
	return r.Prefactura != nil || r.PrefacturaIDCamel != nil || r.PrefacturaIDSnake != nil
}

// FacturaResponse factura en la convención externa, con cliente y prefactura
// embebidos para presentación. created_at/updated_at conservan snake_case.
type FacturaResponse struct {
	ID                  string             `json:"id"`
	TipoComprobante     string             `json:"tipoComprobante"`
	PuntoVenta          string             `json:"puntoVenta"`
	NumeroComprobante   string             `json:"numeroComprobante"`
	FechaEmision        Fecha              `json:"fechaEmision"`
	ClienteID           string             `json:"clienteId"`
	Cliente             *ClienteResumen    `json:"cliente,omitempty"`
	PrefacturaID        string             `json:"prefacturaId"`
	Prefactura          *PrefacturaResumen `json:"prefactura,omitempty"`
	CondicionVenta      string             `json:"condicionVenta"`
	Cantidad            decimal.Decimal    `json:"cantidad"`
	ValorUnitario       decimal.Decimal    `json:"valorUnitario"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	IVA                 decimal.Decimal    `json:"iva"`
	Total               decimal.Decimal    `json:"total"`
	CAE                 string             `json:"cae"`
	FechaVencimientoCAE Fecha              `json:"fechaVencimientoCae"`
	Observaciones       string             `json:"observaciones,omitempty"`
	Estado              string             `json:"estado"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
