package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/despachosur/facturacion-api/internal/domain/billing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalcularLinea_CasoGeneral(t *testing.T) {
	l := billing.CalcularLinea(d("2"), d("100.50"))

	assert.True(t, d("201.00").Equal(l.Subtotal), "subtotal = cantidad × valor unitario")
	assert.True(t, d("42.21").Equal(l.IVA), "iva = subtotal × 0.21")
	assert.True(t, d("243.21").Equal(l.Total), "total = subtotal + iva")
}

func TestCalcularLinea_RedondeoADosDecimales(t *testing.T) {
	// 1 × 99.99 → iva 20.9979 redondea a 21.00
	l := billing.CalcularLinea(d("1"), d("99.99"))

	assert.True(t, d("99.99").Equal(l.Subtotal))
	assert.True(t, d("21.00").Equal(l.IVA))
	assert.True(t, d("120.99").Equal(l.Total))
}

func TestCalcularLinea_ValorCero(t *testing.T) {
	l := billing.CalcularLinea(d("5"), decimal.Zero)

	assert.True(t, l.Subtotal.IsZero())
	assert.True(t, l.IVA.IsZero())
	assert.True(t, l.Total.IsZero())
}

// El total es siempre la suma exacta de subtotal e iva ya redondeados; no se
// redondea una tercera vez.
func TestCalcularLinea_TotalConsistente(t *testing.T) {
	casos := []struct{ cantidad, valor string }{
		{"1", "0.01"},
		{"3", "33.33"},
		{"7", "142.857"},
		{"1000", "999.999"},
	}
	for _, c := range casos {
		l := billing.CalcularLinea(d(c.cantidad), d(c.valor))
		assert.True(t, l.Subtotal.Add(l.IVA).Equal(l.Total),
			"cantidad=%s valor=%s", c.cantidad, c.valor)
	}
}

func TestCalcularTotales_SumaLineas(t *testing.T) {
	lineas := []billing.Linea{
		billing.CalcularLinea(d("2"), d("100")),
		billing.CalcularLinea(d("1"), d("50.50")),
	}
	tot := billing.CalcularTotales(lineas)

	assert.True(t, d("250.50").Equal(tot.Subtotal))
	assert.True(t, d("52.61").Equal(tot.IVA), "42.00 + 10.61")
	assert.True(t, d("303.11").Equal(tot.Total))
}

func TestCalcularTotales_SinLineas(t *testing.T) {
	tot := billing.CalcularTotales(nil)
	assert.True(t, tot.Total.IsZero())
}
