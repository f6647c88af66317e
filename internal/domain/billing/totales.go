// Package billing contiene el cálculo de totales derivados de una factura.
// Todas las funciones son puras; trabajan con decimal para evitar errores de
// redondeo binario en montos.
package billing

import "github.com/shopspring/decimal"

// AlicuotaIVA es la alícuota general vigente (21%).
var AlicuotaIVA = decimal.New(21, -2)

// Linea es una línea de facturación con sus valores derivados.
type Linea struct {
	Descripcion   string
	Cantidad      decimal.Decimal
	ValorUnitario decimal.Decimal
	Subtotal      decimal.Decimal
	IVA           decimal.Decimal
	Total         decimal.Decimal
}

// Totales son los montos a nivel de documento.
type Totales struct {
	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal
}

// CalcularLinea deriva subtotal, IVA y total de una línea.
// subtotal = cantidad × valor unitario (2 decimales); iva = subtotal × 0.21
// (2 decimales); total = subtotal + iva.
func CalcularLinea(cantidad, valorUnitario decimal.Decimal) Linea {
	subtotal := cantidad.Mul(valorUnitario).Round(2)
	iva := subtotal.Mul(AlicuotaIVA).Round(2)
	return Linea{
		Cantidad:      cantidad,
		ValorUnitario: valorUnitario,
		Subtotal:      subtotal,
		IVA:           iva,
		Total:         subtotal.Add(iva),
	}
}

// CalcularTotales agrega las líneas a nivel de documento. Los totales del
// documento se recalculan siempre a partir de las líneas; nunca se aceptan
// como entrada del cliente.
func CalcularTotales(lineas []Linea) Totales {
	var t Totales
	for _, l := range lineas {
		t.Subtotal = t.Subtotal.Add(l.Subtotal)
		t.IVA = t.IVA.Add(l.IVA)
	}
	t.Total = t.Subtotal.Add(t.IVA)
	return t
}
