// Package pdf implementa la representación gráfica de la factura electrónica
// según el régimen AFIP (RG 4291, comprobantes con CAE).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + CUIT  │ [letra] │  N° comprobante + Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: Razón social + CUIT + Condición IVA + Domicilio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Valor Unit. | Subtotal         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA 21% / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER AFIP: CAE + Vencimiento + QR                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/despachosur/facturacion-api/internal/application/billing"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/pkg/cuit"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.FacturaPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	emisor appbilling.Emisor
}

// NewMarotoPDFGenerator construye el generador con los datos del emisor.
func NewMarotoPDFGenerator(emisor appbilling.Emisor) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{emisor: emisor}
}

// GenerarFacturaPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarFacturaPDF(
	_ context.Context,
	factura *entity.Factura,
	cliente *entity.Cliente,
	prefactura *entity.Prefactura,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura Electrónica", true).
		WithAuthor(g.emisor.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(factura))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receptorRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineaRow(factura, prefactura))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(factura))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.afipFooterRows(factura) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: emisor (izq), letra del comprobante (centro) y número + fecha (der).
func (g *MarotoPDFGenerator) headerRow(factura *entity.Factura) core.Row {
	numero := factura.PuntoVenta + "-" + factura.NumeroComprobante
	fecha := factura.FechaEmision.Format("02/01/2006")

	return row.New(20).Add(
		col.New(6).Add(
			text.New(g.emisor.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CUIT: "+cuit.Formatear(g.emisor.CUIT), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(nonEmpty(g.emisor.Domicilio, "—"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(2).Add(
			text.New(factura.TipoComprobante, props.Text{
				Style: fontstyle.Bold, Size: 22, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
			text.New("COD. "+codigoComprobante(factura.TipoComprobante), props.Text{
				Size: 7, Align: align.Center, Top: 14, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("FACTURA ELECTRÓNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// receptorRow: datos del cliente. Si fue eliminado, queda el aviso.
func receptorRow(cliente *entity.Cliente) core.Row {
	if cliente == nil {
		return row.New(14).Add(col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Cliente no disponible", props.Text{Size: 9, Top: 6, Color: colorGray}),
		))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CUIT: %s   |   %s   |   %s",
				cuit.Formatear(cliente.CUIT),
				cliente.CondicionIVA,
				nonEmpty(cliente.Domicilio, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de la línea facturada.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Valor Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// lineaRow: la única línea del comprobante. La descripción sale de las
// observaciones o, en su defecto, de la prefactura de origen.
func lineaRow(factura *entity.Factura, prefactura *entity.Prefactura) core.Row {
	descripcion := factura.Observaciones
	if descripcion == "" && prefactura != nil {
		descripcion = prefactura.Descripcion
	}
	if descripcion == "" {
		descripcion = "Servicios de despacho aduanero"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			factura.Cantidad.StringFixed(0),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(
			descripcion,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			"$ "+formatMonto(factura.ValorUnitario.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"$ "+formatMonto(factura.Subtotal.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(factura *entity.Factura) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA 21%:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$ "+formatMonto(factura.Subtotal.StringFixed(2))),
			value("$ "+formatMonto(factura.IVA.StringFixed(2))),
			grandValue("$ "+formatMonto(factura.Total.StringFixed(2))),
		),
		col.New(3),
	)
}

// afipFooterRows: CAE + vencimiento + QR de verificación AFIP.
func (g *MarotoPDFGenerator) afipFooterRows(factura *entity.Factura) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("AUTORIZACIÓN AFIP", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("CAE N°: %s        Vencimiento CAE: %s",
				factura.CAE,
				factura.FechaVencimientoCAE.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 1, Left: 2}),
		)),
		row.New(3),
	}

	if qr := g.qrPayload(factura); qr != "" {
		rows = append(rows, row.New(45).Add(
			col.New(4).Add(code.NewQr(qr, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escaneá el código QR para verificar\neste comprobante en el sitio de AFIP.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Comprobante autorizado", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 22,
					Left: 3, Color: colorPrimary,
				}),
			),
		))
	}

	return rows
}

// qrPayload arma el contenido del QR según la especificación de AFIP
// (https://www.afip.gob.ar/fe/qr/): JSON en base64 dentro de la URL de
// verificación.
func (g *MarotoPDFGenerator) qrPayload(factura *entity.Factura) string {
	if factura.CAE == "" {
		return ""
	}
	ptoVta, _ := strconv.Atoi(strings.TrimLeft(factura.PuntoVenta, "0"))
	nroCmp, _ := strconv.Atoi(strings.TrimLeft(factura.NumeroComprobante, "0"))
	codCmp, _ := strconv.Atoi(codigoComprobante(factura.TipoComprobante))
	importe, _ := factura.Total.Float64()

	data := map[string]any{
		"ver":        1,
		"fecha":      factura.FechaEmision.Format("2006-01-02"),
		"cuit":       cuit.Normalizar(g.emisor.CUIT),
		"ptoVta":     ptoVta,
		"tipoCmp":    codCmp,
		"nroCmp":     nroCmp,
		"importe":    importe,
		"moneda":     "PES",
		"ctz":        1,
		"tipoCodAut": "E",
		"codAut":     factura.CAE,
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return "https://www.afip.gob.ar/fe/qr/?p=" + base64.StdEncoding.EncodeToString(raw)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// codigoComprobante mapea la letra al código AFIP del tipo de comprobante.
func codigoComprobante(tipo string) string {
	switch tipo {
	case entity.ComprobanteA:
		return "001"
	case entity.ComprobanteB:
		return "006"
	case entity.ComprobanteC:
		return "011"
	case entity.ComprobanteM:
		return "051"
	case entity.ComprobanteE:
		return "019"
	}
	return "000"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMonto convierte "1234.56" a formato local "1.234,56".
func formatMonto(s string) string {
	entero, dec, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(entero, "-")
	if neg {
		entero = entero[1:]
	}
	n := len(entero)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, entero[i])
	}
	out := string(buf)
	if dec != "" {
		out += "," + dec
	}
	if neg {
		out = "-" + out
	}
	return out
}
