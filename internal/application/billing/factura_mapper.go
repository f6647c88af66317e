package billing

import (
	"github.com/shopspring/decimal"

	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
)

// mapFacturaRequest traduce el payload externo (camelCase) a un patch en la
// forma de almacenamiento. Solo los campos presentes producen entradas en el
// patch. Los enums fuera de rango caen al default documentado (comprobante A,
// estado emitida) salvo en modo estricto, donde son un error de validación.
func mapFacturaRequest(in dto.FacturaRequest, strict bool) (*entity.FacturaPatch, error) {
	p := &entity.FacturaPatch{}

	if in.TipoComprobante != nil {
		tipo := *in.TipoComprobante
		if !entity.TiposComprobanteValidos[tipo] {
			if strict {
				return nil, domain.NewValidationError("tipo_comprobante")
			}
			tipo = entity.ComprobanteA
		}
		p.TipoComprobante = &tipo
	}
	if in.PuntoVenta != nil {
		p.PuntoVenta = in.PuntoVenta
	}
	if in.NumeroComprobante != nil {
		p.NumeroComprobante = in.NumeroComprobante
	}
	if in.FechaEmision != nil && in.FechaEmision.Valida {
		t := in.FechaEmision.Time
		p.FechaEmision = &t
	}
	if in.TieneReferenciaCliente() {
		id := in.ResolverClienteID()
		p.ClienteID = &id
	}
	if in.TieneReferenciaPrefactura() {
		id := in.ResolverPrefacturaID()
		p.PrefacturaID = &id
	}
	if in.CondicionVenta != nil {
		p.CondicionVenta = in.CondicionVenta
	}
	if in.Cantidad != nil {
		cantidad := decimal.NewFromInt(1)
		if in.Cantidad.Valido {
			cantidad = in.Cantidad.Valor
		}
		p.Cantidad = &cantidad
	}
	if in.ValorUnitario != nil {
		valor := decimal.Zero
		if in.ValorUnitario.Valido {
			valor = in.ValorUnitario.Valor
		}
		p.ValorUnitario = &valor
	}
	if in.CAE != nil {
		p.CAE = in.CAE
	}
	if in.FechaVencimientoCAE != nil && in.FechaVencimientoCAE.Valida {
		t := in.FechaVencimientoCAE.Time
		p.FechaVencimientoCAE = &t
	}
	if in.Observaciones != nil {
		p.Observaciones = in.Observaciones
	}
	if in.Estado != nil {
		estado := *in.Estado
		if !entity.EstadosValidos[estado] {
			if strict {
				return nil, domain.NewValidationError("estado")
			}
			estado = entity.EstadoEmitida
		}
		p.Estado = &estado
	}

	// El formulario de carga manda ítems, pero el esquema guarda una sola
	// línea: el primer ítem pisa cantidad y valor unitario, y su descripción
	// se usa como observaciones si el payload no trajo ninguna.
	if len(in.Items) > 0 {
		aplicarPrimerItem(p, in.Items[0])
	}

	return p, nil
}

func aplicarPrimerItem(p *entity.FacturaPatch, item dto.FacturaItemRequest) {
	cantidad := decimal.NewFromInt(1)
	if item.Cantidad != nil && item.Cantidad.Valido {
		cantidad = item.Cantidad.Valor
	}
	p.Cantidad = &cantidad

	valor := decimal.Zero
	if item.ValorUnitario != nil && item.ValorUnitario.Valido {
		valor = item.ValorUnitario.Valor
	}
	p.ValorUnitario = &valor

	if p.Observaciones == nil && item.Descripcion != "" {
		desc := item.Descripcion
		p.Observaciones = &desc
	}
}
