package dto

import "time"

// Los payloads de clientes usan directamente los nombres de columna
// (snake_case); no hay capa de mapeo como en facturas.

// ClienteRequest body para POST/PUT /api/clientes. En updates los punteros
// nil significan "no tocar el campo".
type ClienteRequest struct {
	Tipo               *string `json:"tipo"`
	CUIT               *string `json:"cuit"`
	RazonSocial        *string `json:"razon_social"`
	CondicionIVA       *string `json:"condicion_iva"`
	Domicilio          *string `json:"domicilio"`
	Localidad          *string `json:"localidad"`
	Rubro              *string `json:"rubro"`
	RazonSocialEmpresa *string `json:"razon_social_empresa"`
	DomicilioEmpresa   *string `json:"domicilio_empresa"`
}

// ClienteResponse cliente completo en respuestas.
type ClienteResponse struct {
	ID                 string    `json:"id"`
	Tipo               string    `json:"tipo"`
	CUIT               string    `json:"cuit"`
	RazonSocial        string    `json:"razon_social"`
	CondicionIVA       string    `json:"condicion_iva"`
	Domicilio          string    `json:"domicilio"`
	Localidad          string    `json:"localidad"`
	Rubro              string    `json:"rubro"`
	RazonSocialEmpresa string    `json:"razon_social_empresa,omitempty"`
	DomicilioEmpresa   string    `json:"domicilio_empresa,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ClienteResumen copia embebida del cliente en prefacturas y facturas
// (denormalización de lectura para presentación).
type ClienteResumen struct {
	ID                 string `json:"id"`
	Tipo               string `json:"tipo"`
	CUIT               string `json:"cuit"`
	RazonSocial        string `json:"razon_social"`
	CondicionIVA       string `json:"condicion_iva"`
	RazonSocialEmpresa string `json:"razon_social_empresa,omitempty"`
	DomicilioEmpresa   string `json:"domicilio_empresa,omitempty"`
}
