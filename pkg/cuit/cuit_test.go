package cuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despachosur/facturacion-api/pkg/cuit"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalizar
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_EliminaTodoLoQueNoEsDigito(t *testing.T) {
	assert.Equal(t, "20123456786", cuit.Normalizar("20-12345678-6"))
	assert.Equal(t, "20123456786", cuit.Normalizar(" 20.12345678/6 "))
	assert.Equal(t, "20123456786", cuit.Normalizar("CUIT: 20123456786"))
	assert.Equal(t, "", cuit.Normalizar("sin números"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Formatear
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatear_CuitCompleto(t *testing.T) {
	assert.Equal(t, "20-12345678-6", cuit.Formatear("20123456786"))
	assert.Equal(t, "20-12345678-6", cuit.Formatear("20-12345678-6"))
	assert.Equal(t, "30-50001091-2", cuit.Formatear("30 50001091 2"))
}

// Con menos de 11 dígitos la entrada vuelve sin modificar, guiones incluidos.
func TestFormatear_EntradaCortaVuelveIntacta(t *testing.T) {
	assert.Equal(t, "2012345678", cuit.Formatear("2012345678"))
	assert.Equal(t, "20-1234", cuit.Formatear("20-1234"))
	assert.Equal(t, "", cuit.Formatear(""))
}

func TestFormatear_ExcedenteSeTrunca(t *testing.T) {
	assert.Equal(t, "20-12345678-6", cuit.Formatear("201234567869999"))
}

func TestFormatearParcial_AgrupaIncremental(t *testing.T) {
	assert.Equal(t, "2", cuit.FormatearParcial("2"))
	assert.Equal(t, "20", cuit.FormatearParcial("20"))
	assert.Equal(t, "20-1", cuit.FormatearParcial("201"))
	assert.Equal(t, "20-12345678", cuit.FormatearParcial("2012345678"))
	assert.Equal(t, "20-12345678-6", cuit.FormatearParcial("20123456786"))
	assert.Equal(t, "20-12345678-6", cuit.FormatearParcial("20123456786999"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Dígito verificador (módulo 11)
// ──────────────────────────────────────────────────────────────────────────────

func TestDigitoVerificador(t *testing.T) {
	cases := []struct {
		nombre string
		in     string
		want   byte
	}{
		{"caso general", "2012345678", '6'},
		{"cuit conocido", "3050001091", '2'},
		{"resto cero", "2000000006", '0'},
		{"resto uno", "2000000001", '9'},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			dv, err := cuit.DigitoVerificador(tc.in)
			require.NoError(t, err)
			assert.Equal(t, string(tc.want), string(dv))
		})
	}
}

func TestDigitoVerificador_EntradaCorta(t *testing.T) {
	_, err := cuit.DigitoVerificador("123")
	assert.Error(t, err)
}

func TestEsValido(t *testing.T) {
	assert.True(t, cuit.EsValido("20123456786"))
	assert.True(t, cuit.EsValido("20-12345678-6"))
	assert.True(t, cuit.EsValido("30-50001091-2"))

	assert.False(t, cuit.EsValido("20123456785"), "dígito verificador incorrecto")
	assert.False(t, cuit.EsValido("2012345678"), "faltan dígitos")
	assert.False(t, cuit.EsValido(""))
}
