package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain"
	calc "github.com/despachosur/facturacion-api/internal/domain/billing"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// FacturaUseCase casos de uso para facturas electrónicas.
type FacturaUseCase struct {
	repo           repository.FacturaRepository
	clienteRepo    repository.ClienteRepository
	prefacturaRepo repository.PrefacturaRepository
	strictEnums    bool
}

// NewFacturaUseCase construye el caso de uso. Con strictEnums en true los
// enums fuera de rango son un 400 en lugar de caer al default.
func NewFacturaUseCase(
	repo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	prefacturaRepo repository.PrefacturaRepository,
	strictEnums bool,
) *FacturaUseCase {
	return &FacturaUseCase{
		repo:           repo,
		clienteRepo:    clienteRepo,
		prefacturaRepo: prefacturaRepo,
		strictEnums:    strictEnums,
	}
}

// Create emite una factura. El cliente y la prefactura referenciados deben
// existir en el momento del alta; los totales se derivan siempre de cantidad
// y valor unitario, nunca del payload.
func (uc *FacturaUseCase) Create(in dto.FacturaRequest) (*dto.FacturaResponse, error) {
	patch, err := mapFacturaRequest(in, uc.strictEnums)
	if err != nil {
		return nil, err
	}
	if err := validarFacturaNueva(patch); err != nil {
		return nil, err
	}

	cliente, err := uc.clienteRepo.GetByID(*patch.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	prefactura, err := uc.prefacturaRepo.GetByID(*patch.PrefacturaID)
	if err != nil {
		return nil, err
	}
	if prefactura == nil {
		return nil, domain.ErrNotFound
	}

	linea := calc.CalcularLinea(*patch.Cantidad, *patch.ValorUnitario)
	now := time.Now()
	f := &entity.Factura{
		ID:                  uuid.New().String(),
		TipoComprobante:     *patch.TipoComprobante,
		PuntoVenta:          *patch.PuntoVenta,
		NumeroComprobante:   *patch.NumeroComprobante,
		FechaEmision:        *patch.FechaEmision,
		ClienteID:           *patch.ClienteID,
		PrefacturaID:        *patch.PrefacturaID,
		CondicionVenta:      *patch.CondicionVenta,
		Cantidad:            linea.Cantidad,
		ValorUnitario:       linea.ValorUnitario,
		Subtotal:            linea.Subtotal,
		IVA:                 linea.IVA,
		Total:               linea.Total,
		CAE:                 *patch.CAE,
		FechaVencimientoCAE: *patch.FechaVencimientoCAE,
		Estado:              *patch.Estado,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if patch.Observaciones != nil {
		f.Observaciones = *patch.Observaciones
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFacturaResponse(f, cliente, prefactura), nil
}

// GetByID obtiene una factura con cliente y prefactura embebidos. Las
// referencias colgantes (registro padre eliminado) se presentan en null.
func (uc *FacturaUseCase) GetByID(id string) (*dto.FacturaResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	cliente, prefactura, err := uc.cargarReferencias(f)
	if err != nil {
		return nil, err
	}
	return toFacturaResponse(f, cliente, prefactura), nil
}

// List lista facturas, más recientes primero, con referencias embebidas.
func (uc *FacturaUseCase) List(filter repository.FacturaFilter) ([]*dto.FacturaResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FacturaResponse, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}
	clientes, err := uc.clienteRepo.List(repository.ClienteFilter{})
	if err != nil {
		return nil, err
	}
	clientePorID := make(map[string]*entity.Cliente, len(clientes))
	for _, c := range clientes {
		clientePorID[c.ID] = c
	}
	prefacturas, err := uc.prefacturaRepo.List(repository.PrefacturaFilter{})
	if err != nil {
		return nil, err
	}
	prefacturaPorID := make(map[string]*entity.Prefactura, len(prefacturas))
	for _, p := range prefacturas {
		prefacturaPorID[p.ID] = p
	}
	for _, f := range list {
		out = append(out, toFacturaResponse(f, clientePorID[f.ClienteID], prefacturaPorID[f.PrefacturaID]))
	}
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// payload se escriben. Si cambian cantidad o valor unitario, los totales se
// recalculan combinando el valor nuevo con el vigente en la fila.
func (uc *FacturaUseCase) Update(id string, in dto.FacturaRequest) (*dto.FacturaResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	patch, err := mapFacturaRequest(in, uc.strictEnums)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		cliente, prefactura, err := uc.cargarReferencias(existing)
		if err != nil {
			return nil, err
		}
		return toFacturaResponse(existing, cliente, prefactura), nil
	}
	if patch.Cantidad != nil || patch.ValorUnitario != nil {
		cantidad := existing.Cantidad
		if patch.Cantidad != nil {
			cantidad = *patch.Cantidad
		}
		valor := existing.ValorUnitario
		if patch.ValorUnitario != nil {
			valor = *patch.ValorUnitario
		}
		linea := calc.CalcularLinea(cantidad, valor)
		patch.Subtotal = &linea.Subtotal
		patch.IVA = &linea.IVA
		patch.Total = &linea.Total
	}
	if err := uc.repo.Update(id, patch); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	cliente, prefactura, err := uc.cargarReferencias(updated)
	if err != nil {
		return nil, err
	}
	return toFacturaResponse(updated, cliente, prefactura), nil
}

// Delete elimina la factura.
func (uc *FacturaUseCase) Delete(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// camposRequeridosFactura en orden de validación; el primer faltante se
// reporta en el 400.
func validarFacturaNueva(p *entity.FacturaPatch) error {
	requeridos := []struct {
		campo string
		falta bool
	}{
		{"tipo_comprobante", p.TipoComprobante == nil || *p.TipoComprobante == ""},
		{"punto_venta", p.PuntoVenta == nil || *p.PuntoVenta == ""},
		{"numero_comprobante", p.NumeroComprobante == nil || *p.NumeroComprobante == ""},
		{"fecha_emision", p.FechaEmision == nil},
		{"cliente_id", p.ClienteID == nil || *p.ClienteID == ""},
		{"prefactura_id", p.PrefacturaID == nil || *p.PrefacturaID == ""},
		{"condicion_venta", p.CondicionVenta == nil || *p.CondicionVenta == ""},
		{"cantidad", p.Cantidad == nil},
		{"valor_unitario", p.ValorUnitario == nil},
		{"cae", p.CAE == nil || *p.CAE == ""},
		{"fecha_vencimiento_cae", p.FechaVencimientoCAE == nil},
		{"estado", p.Estado == nil || *p.Estado == ""},
	}
	for _, r := range requeridos {
		if r.falta {
			return domain.NewValidationError(r.campo)
		}
	}
	return nil
}

func (uc *FacturaUseCase) cargarReferencias(f *entity.Factura) (*entity.Cliente, *entity.Prefactura, error) {
	cliente, err := uc.clienteRepo.GetByID(f.ClienteID)
	if err != nil {
		return nil, nil, err
	}
	prefactura, err := uc.prefacturaRepo.GetByID(f.PrefacturaID)
	if err != nil {
		return nil, nil, err
	}
	return cliente, prefactura, nil
}

func toFacturaResponse(f *entity.Factura, cliente *entity.Cliente, prefactura *entity.Prefactura) *dto.FacturaResponse {
	return &dto.FacturaResponse{
		ID:                  f.ID,
		TipoComprobante:     f.TipoComprobante,
		PuntoVenta:          f.PuntoVenta,
		NumeroComprobante:   f.NumeroComprobante,
		FechaEmision:        dto.NuevaFecha(f.FechaEmision),
		ClienteID:           f.ClienteID,
		Cliente:             toClienteResumen(cliente),
		PrefacturaID:        f.PrefacturaID,
		Prefactura:          toPrefacturaResumen(prefactura),
		CondicionVenta:      f.CondicionVenta,
		Cantidad:            f.Cantidad,
		ValorUnitario:       f.ValorUnitario,
		Subtotal:            f.Subtotal,
		IVA:                 f.IVA,
		Total:               f.Total,
		CAE:                 f.CAE,
		FechaVencimientoCAE: dto.NuevaFecha(f.FechaVencimientoCAE),
		Observaciones:       f.Observaciones,
		Estado:              f.Estado,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}
