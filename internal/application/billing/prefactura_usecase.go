package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// PrefacturaUseCase casos de uso para prefacturas.
type PrefacturaUseCase struct {
	repo        repository.PrefacturaRepository
	clienteRepo repository.ClienteRepository
	strictEnums bool
}

// NewPrefacturaUseCase construye el caso de uso. Con strictEnums en true un
// concepto desconocido es un 400 en lugar de caer al default.
func NewPrefacturaUseCase(repo repository.PrefacturaRepository, clienteRepo repository.ClienteRepository, strictEnums bool) *PrefacturaUseCase {
	return &PrefacturaUseCase{repo: repo, clienteRepo: clienteRepo, strictEnums: strictEnums}
}

// Create crea una prefactura. El cliente referenciado debe existir en el
// momento del alta; la consistencia no se vuelve a verificar después.
func (uc *PrefacturaUseCase) Create(in dto.PrefacturaRequest) (*dto.PrefacturaResponse, error) {
	p := &entity.Prefactura{}
	if err := uc.aplicarCamposPrefactura(p, in); err != nil {
		return nil, err
	}
	if err := validarPrefactura(p, in.Cantidad != nil); err != nil {
		return nil, err
	}
	cliente, err := uc.clienteRepo.GetByID(p.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return uc.toPrefacturaResponse(p, cliente), nil
}

// GetByID obtiene una prefactura con su cliente embebido. Si el cliente fue
// eliminado el campo cliente viene en null.
func (uc *PrefacturaUseCase) GetByID(id string) (*dto.PrefacturaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(p.ClienteID)
	if err != nil {
		return nil, err
	}
	return uc.toPrefacturaResponse(p, cliente), nil
}

// List lista prefacturas, más recientes primero, con el cliente embebido.
func (uc *PrefacturaUseCase) List(filter repository.PrefacturaFilter) ([]*dto.PrefacturaResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	clientes, err := uc.clientesPorID(list)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PrefacturaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, uc.toPrefacturaResponse(p, clientes[p.ClienteID]))
	}
	return out, nil
}

// Update actualiza los campos presentes del payload sobre el registro actual.
func (uc *PrefacturaUseCase) Update(id string, in dto.PrefacturaRequest) (*dto.PrefacturaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.aplicarCamposPrefactura(p, in); err != nil {
		return nil, err
	}
	if err := validarPrefactura(p, true); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	cliente, err := uc.clienteRepo.GetByID(p.ClienteID)
	if err != nil {
		return nil, err
	}
	return uc.toPrefacturaResponse(p, cliente), nil
}

// Delete elimina la prefactura. Las facturas que la referencian no se tocan.
func (uc *PrefacturaUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *PrefacturaUseCase) aplicarCamposPrefactura(p *entity.Prefactura, in dto.PrefacturaRequest) error {
	if id := in.ResolverClienteID(); id != "" {
		p.ClienteID = id
	}
	if in.Fecha != nil && in.Fecha.Valida {
		p.Fecha = in.Fecha.Time
	}
	if in.Concepto != nil {
		concepto := *in.Concepto
		if !entity.ConceptosValidos[concepto] {
			if uc.strictEnums {
				return domain.NewValidationError("concepto")
			}
			concepto = entity.ConceptoImportacion
		}
		p.Concepto = concepto
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Cantidad != nil {
		if in.Cantidad.Valido {
			p.Cantidad = in.Cantidad.Valor
		} else {
			p.Cantidad = decimal.Zero
		}
	}
	return nil
}

// validarPrefactura valida el registro ya fusionado. La cantidad se exige por
// presencia en el payload (una cantidad imparseable cae a 0 pero no se
// rechaza); en updates el valor vigente cuenta como presente.
func validarPrefactura(p *entity.Prefactura, cantidadPresente bool) error {
	switch {
	case p.ClienteID == "":
		return domain.NewValidationError("cliente_id")
	case p.Fecha.IsZero():
		return domain.NewValidationError("fecha")
	case p.Concepto == "":
		return domain.NewValidationError("concepto")
	case p.Descripcion == "":
		return domain.NewValidationError("descripcion")
	case !cantidadPresente:
		return domain.NewValidationError("cantidad")
	}
	return nil
}

// clientesPorID resuelve los clientes embebidos de un listado en una sola
// consulta en lugar de un GetByID por fila.
func (uc *PrefacturaUseCase) clientesPorID(list []*entity.Prefactura) (map[string]*entity.Cliente, error) {
	if len(list) == 0 {
		return nil, nil
	}
	clientes, err := uc.clienteRepo.List(repository.ClienteFilter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Cliente, len(clientes))
	for _, c := range clientes {
		byID[c.ID] = c
	}
	return byID, nil
}

func (uc *PrefacturaUseCase) toPrefacturaResponse(p *entity.Prefactura, cliente *entity.Cliente) *dto.PrefacturaResponse {
	return &dto.PrefacturaResponse{
		ID:          p.ID,
		ClienteID:   p.ClienteID,
		Cliente:     toClienteResumen(cliente),
		Fecha:       dto.NuevaFecha(p.Fecha),
		Concepto:    p.Concepto,
		Descripcion: p.Descripcion,
		Cantidad:    p.Cantidad,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPrefacturaResumen(p *entity.Prefactura) *dto.PrefacturaResumen {
	if p == nil {
		return nil
	}
	return &dto.PrefacturaResumen{
		ID:          p.ID,
		Concepto:    p.Concepto,
		Descripcion: p.Descripcion,
	}
}
