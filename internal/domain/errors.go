package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// ValidationError señala un campo requerido ausente o con valor fuera del
// conjunto permitido sin fallback documentado. Envuelve ErrInvalidInput para
// que los handlers puedan mapearlo con errors.Is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("el campo %s es requerido", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye el error nombrando el campo ofensor.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
