package billing

import (
	"sort"

	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, para probar los casos de
// uso sin base de datos.

type fakeClienteRepo struct {
	items map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{items: make(map[string]*entity.Cliente)}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.items[id], nil
}

func (f *fakeClienteRepo) GetByCUIT(cuit string) (*entity.Cliente, error) {
	for _, c := range f.items {
		if c.CUIT == cuit {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) List(filter repository.ClienteFilter) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range f.items {
		if filter.Tipo != "" && c.Tipo != filter.Tipo {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RazonSocial < list[j].RazonSocial })
	return list, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

type fakePrefacturaRepo struct {
	items map[string]*entity.Prefactura
}

func newFakePrefacturaRepo() *fakePrefacturaRepo {
	return &fakePrefacturaRepo{items: make(map[string]*entity.Prefactura)}
}

func (f *fakePrefacturaRepo) Create(p *entity.Prefactura) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakePrefacturaRepo) GetByID(id string) (*entity.Prefactura, error) {
	return f.items[id], nil
}

func (f *fakePrefacturaRepo) List(filter repository.PrefacturaFilter) ([]*entity.Prefactura, error) {
	var list []*entity.Prefactura
	for _, p := range f.items {
		if filter.ClienteID != "" && p.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Concepto != "" && p.Concepto != filter.Concepto {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

func (f *fakePrefacturaRepo) Update(p *entity.Prefactura) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakePrefacturaRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}

type fakeFacturaRepo struct {
	items map[string]*entity.Factura
	// último patch recibido por Update, para verificar escrituras parciales
	lastPatch *entity.FacturaPatch
}

func newFakeFacturaRepo() *fakeFacturaRepo {
	return &fakeFacturaRepo{items: make(map[string]*entity.Factura)}
}

func (f *fakeFacturaRepo) Create(fa *entity.Factura) error {
	f.items[fa.ID] = fa
	return nil
}

func (f *fakeFacturaRepo) GetByID(id string) (*entity.Factura, error) {
	return f.items[id], nil
}

func (f *fakeFacturaRepo) List(filter repository.FacturaFilter) ([]*entity.Factura, error) {
	var list []*entity.Factura
	for _, fa := range f.items {
		if filter.ClienteID != "" && fa.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Estado != "" && fa.Estado != filter.Estado {
			continue
		}
		list = append(list, fa)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaEmision.After(list[j].FechaEmision) })
	return list, nil
}

func (f *fakeFacturaRepo) Update(id string, patch *entity.FacturaPatch) error {
	f.lastPatch = patch
	fa, ok := f.items[id]
	if !ok {
		return nil
	}
	if patch.TipoComprobante != nil {
		fa.TipoComprobante = *patch.TipoComprobante
	}
	if patch.PuntoVenta != nil {
		fa.PuntoVenta = *patch.PuntoVenta
	}
	if patch.NumeroComprobante != nil {
		fa.NumeroComprobante = *patch.NumeroComprobante
	}
	if patch.FechaEmision != nil {
		fa.FechaEmision = *patch.FechaEmision
	}
	if patch.ClienteID != nil {
		fa.ClienteID = *patch.ClienteID
	}
	if patch.PrefacturaID != nil {
		fa.PrefacturaID = *patch.PrefacturaID
	}
	if patch.CondicionVenta != nil {
		fa.CondicionVenta = *patch.CondicionVenta
	}
	if patch.Cantidad != nil {
		fa.Cantidad = *patch.Cantidad
	}
	if patch.ValorUnitario != nil {
		fa.ValorUnitario = *patch.ValorUnitario
	}
	if patch.Subtotal != nil {
		fa.Subtotal = *patch.Subtotal
	}
	if patch.IVA != nil {
		fa.IVA = *patch.IVA
	}
	if patch.Total != nil {
		fa.Total = *patch.Total
	}
	if patch.CAE != nil {
		fa.CAE = *patch.CAE
	}
	if patch.FechaVencimientoCAE != nil {
		fa.FechaVencimientoCAE = *patch.FechaVencimientoCAE
	}
	if patch.Observaciones != nil {
		fa.Observaciones = *patch.Observaciones
	}
	if patch.Estado != nil {
		fa.Estado = *patch.Estado
	}
	return nil
}

func (f *fakeFacturaRepo) Delete(id string) error {
	delete(f.items, id)
	return nil
}
