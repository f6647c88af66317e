package entity

import "time"

// Tipos de cliente. Un despachante de aduana opera en representación de una
// empresa; un cliente directo factura a nombre propio.
const (
	TipoClienteDirecto = "cliente"
	TipoDespachante    = "despachante"
)

// Condiciones frente al IVA (AFIP).
const (
	CondicionResponsableInscripto = "Responsable Inscripto"
	CondicionMonotributista       = "Monotributista"
	CondicionExento               = "Exento"
	CondicionConsumidorFinal      = "Consumidor Final"
)

// Cliente representa un cliente directo o un despachante de aduana.
// CUIT se almacena siempre en forma normalizada (11 dígitos, sin separadores).
// RazonSocialEmpresa y DomicilioEmpresa solo tienen sentido cuando Tipo es
// despachante; para clientes directos quedan vacíos.
type Cliente struct {
	ID                 string
	Tipo               string
	CUIT               string
	RazonSocial        string
	CondicionIVA       string
	Domicilio          string
	Localidad          string
	Rubro              string
	RazonSocialEmpresa string
	DomicilioEmpresa   string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EsDespachante indica si el cliente actúa como despachante de aduana.
func (c *Cliente) EsDespachante() bool {
	return c.Tipo == TipoDespachante
}
