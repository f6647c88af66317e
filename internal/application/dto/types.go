package dto

import (
	"bytes"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Monto es un valor numérico tolerante: acepta números JSON o strings con
// formato libre ("1.234,50" no; "$1234.50" sí: se descartan todos los
// caracteres salvo dígitos, signo y punto decimal). Un parse fallido no es un
// error de deserialización: deja Valido en false y el mapeo aplica el fallback
// documentado para cada campo.
type Monto struct {
	Valor  decimal.Decimal
	Valido bool
}

// UnmarshalJSON implementa json.Unmarshaler.
func (m *Monto) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		s = strings.Trim(s, `"`)
		s = limpiarNumero(s)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	m.Valor = v
	m.Valido = true
	return nil
}

// MarshalJSON serializa el valor como número (o null si no es válido).
func (m Monto) MarshalJSON() ([]byte, error) {
	if !m.Valido {
		return []byte("null"), nil
	}
	return []byte(m.Valor.String()), nil
}

// limpiarNumero conserva dígitos, signo y punto decimal.
func limpiarNumero(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fecha es una fecha sin componente horario. Acepta "2006-01-02" o un
// timestamp RFC3339; en ambos casos se trunca a la porción de fecha antes de
// persistir.
type Fecha struct {
	time.Time
	Valida bool
}

const fechaLayout = "2006-01-02"

// UnmarshalJSON implementa json.Unmarshaler.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if idx := strings.IndexByte(s, 'T'); idx > 0 {
		s = s[:idx]
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return nil
	}
	f.Time = t
	f.Valida = true
	return nil
}

// MarshalJSON serializa como "2006-01-02" (o null si no es válida).
func (f Fecha) MarshalJSON() ([]byte, error) {
	if !f.Valida {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(fechaLayout) + `"`), nil
}

// NuevaFecha construye una Fecha válida truncada al día (UTC).
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valida: true}
}
