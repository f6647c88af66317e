package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrefacturaRequest body para POST/PUT /api/prefacturas. El cliente puede
// venir como foreign key (cliente_id) o como objeto embebido; el objeto se
// aplana a su id y no se persiste.
type PrefacturaRequest struct {
	ClienteID   *string `json:"cliente_id"`
	Cliente     *Ref    `json:"cliente"`
	Fecha       *Fecha  `json:"fecha"`
	Concepto    *string `json:"concepto"`
	Descripcion *string `json:"descripcion"`
	Cantidad    *Monto  `json:"cantidad"`
}

// ResolverClienteID aplana la referencia: el objeto embebido tiene prioridad
// sobre la foreign key suelta.
func (r *PrefacturaRequest) ResolverClienteID() string {
	if r.Cliente != nil && r.Cliente.ID != "" {
		return r.Cliente.ID
	}
	if r.ClienteID != nil {
		return *r.ClienteID
	}
	return ""
}

// PrefacturaResponse prefactura con su cliente embebido.
type PrefacturaResponse struct {
	ID          string          `json:"id"`
	ClienteID   string          `json:"cliente_id"`
	Cliente     *ClienteResumen `json:"cliente,omitempty"`
	Fecha       Fecha           `json:"fecha"`
	Concepto    string          `json:"concepto"`
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PrefacturaResumen copia embebida de la prefactura dentro de una factura.
type PrefacturaResumen struct {
	ID          string `json:"id"`
	Concepto    string `json:"concepto"`
	Descripcion string `json:"descripcion"`
}
