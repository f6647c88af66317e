// Package cuit normaliza la Clave Única de Identificación Tributaria (AFIP, 11 dígitos).
// Las funciones de formato son best-effort: nunca devuelven error ante entrada malformada.
package cuit

import (
	"fmt"
	"unicode"
)

// pesos para el dígito verificador del CUIT (módulo 11, AFIP).
// Se aplican a los 10 primeros dígitos, de izquierda a derecha.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// Normalizar elimina todo carácter no numérico y devuelve solo los dígitos.
// No valida longitud: el llamador es responsable de garantizar 11 dígitos antes de persistir.
func Normalizar(raw string) string {
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Formatear devuelve el CUIT en forma de visualización XX-XXXXXXXX-X.
// Si la entrada tiene menos de 11 dígitos se devuelve sin modificar; si tiene
// más, se usan solo los primeros 11.
func Formatear(raw string) string {
	digits := Normalizar(raw)
	if len(digits) < 11 {
		return raw
	}
	return digits[0:2] + "-" + digits[2:10] + "-" + digits[10:11]
}

// FormatearParcial agrupa de forma incremental mientras el usuario tipea:
// hasta 2 dígitos tal cual, luego XX-XXXXXXXX y finalmente XX-XXXXXXXX-X.
// La entrada se trunca a 11 dígitos.
func FormatearParcial(raw string) string {
	digits := Normalizar(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 10:
		return digits[0:2] + "-" + digits[2:]
	default:
		return digits[0:2] + "-" + digits[2:10] + "-" + digits[10:]
	}
}

// DigitoVerificador calcula el dígito verificador para los 10 primeros dígitos del CUIT.
func DigitoVerificador(raw string) (byte, error) {
	digits := Normalizar(raw)
	if len(digits) < 10 {
		return 0, fmt.Errorf("cuit: se requieren al menos 10 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * cuitWeights[i]
	}
	switch mod := sum % 11; mod {
	case 0:
		return '0', nil
	case 1:
		return '9', nil
	default:
		return byte('0' + (11 - mod)), nil
	}
}

// EsValido verifica que el CUIT tenga 11 dígitos y dígito verificador correcto.
// El flujo de escritura no lo exige; queda disponible para validaciones de front o importaciones.
func EsValido(raw string) bool {
	digits := Normalizar(raw)
	if len(digits) != 11 {
		return false
	}
	dv, err := DigitoVerificador(digits)
	if err != nil {
		return false
	}
	return digits[10] == dv
}
