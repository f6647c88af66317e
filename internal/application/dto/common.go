package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta mínima para operaciones sin cuerpo (logout, delete).
type OkResponse struct {
	Ok bool `json:"ok"`
}

// Ref referencia embebida a otra entidad; solo importa el id.
// Permite aceptar objetos anidados (cliente, prefactura) en los payloads y
// aplanarlos a su foreign key.
type Ref struct {
	ID string `json:"id"`
}
