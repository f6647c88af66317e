package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
	"github.com/despachosur/facturacion-api/pkg/cuit"
)

// ClienteUseCase casos de uso para clientes y despachantes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// camposRequeridosCliente en orden de validación; el primer faltante se
// reporta en el 400.
var camposRequeridosCliente = []string{
	"tipo", "cuit", "razon_social", "condicion_iva", "domicilio", "localidad", "rubro",
}

// Create crea un cliente o despachante. El CUIT se normaliza a 11 dígitos
// antes de persistir; un CUIT de otra longitud es un error de validación.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{}
	aplicarCamposCliente(c, in)
	if err := validarCliente(c); err != nil {
		return nil, err
	}
	if existing, _ := uc.repo.GetByCUIT(c.CUIT); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List lista clientes, opcionalmente filtrados por tipo, ordenados por razón social.
func (uc *ClienteUseCase) List(tipo string) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List(repository.ClienteFilter{Tipo: tipo})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update actualiza el registro completo. Los campos ausentes del payload
// conservan su valor actual.
func (uc *ClienteUseCase) Update(id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	aplicarCamposCliente(c, in)
	if err := validarCliente(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina el cliente. No verifica dependientes: las prefacturas y
// facturas que lo referencian conservan la foreign key colgante.
func (uc *ClienteUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func aplicarCamposCliente(c *entity.Cliente, in dto.ClienteRequest) {
	if in.Tipo != nil {
		c.Tipo = *in.Tipo
	}
	if in.CUIT != nil {
		c.CUIT = cuit.Normalizar(*in.CUIT)
	}
	if in.RazonSocial != nil {
		c.RazonSocial = *in.RazonSocial
	}
	if in.CondicionIVA != nil {
		c.CondicionIVA = *in.CondicionIVA
	}
	if in.Domicilio != nil {
		c.Domicilio = *in.Domicilio
	}
	if in.Localidad != nil {
		c.Localidad = *in.Localidad
	}
	if in.Rubro != nil {
		c.Rubro = *in.Rubro
	}
	if in.RazonSocialEmpresa != nil {
		c.RazonSocialEmpresa = *in.RazonSocialEmpresa
	}
	if in.DomicilioEmpresa != nil {
		c.DomicilioEmpresa = *in.DomicilioEmpresa
	}
	// Los campos de empresa solo aplican a despachantes.
	if c.Tipo == entity.TipoClienteDirecto {
		c.RazonSocialEmpresa = ""
		c.DomicilioEmpresa = ""
	}
}

func validarCliente(c *entity.Cliente) error {
	valores := map[string]string{
		"tipo": c.Tipo, "cuit": c.CUIT, "razon_social": c.RazonSocial,
		"condicion_iva": c.CondicionIVA, "domicilio": c.Domicilio,
		"localidad": c.Localidad, "rubro": c.Rubro,
	}
	for _, campo := range camposRequeridosCliente {
		if valores[campo] == "" {
			return domain.NewValidationError(campo)
		}
	}
	if c.Tipo != entity.TipoClienteDirecto && c.Tipo != entity.TipoDespachante {
		return domain.NewValidationError("tipo")
	}
	if len(c.CUIT) != 11 {
		return domain.NewValidationError("cuit")
	}
	return nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                 c.ID,
		Tipo:               c.Tipo,
		CUIT:               c.CUIT,
		RazonSocial:        c.RazonSocial,
		CondicionIVA:       c.CondicionIVA,
		Domicilio:          c.Domicilio,
		Localidad:          c.Localidad,
		Rubro:              c.Rubro,
		RazonSocialEmpresa: c.RazonSocialEmpresa,
		DomicilioEmpresa:   c.DomicilioEmpresa,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toClienteResumen(c *entity.Cliente) *dto.ClienteResumen {
	if c == nil {
		return nil
	}
	return &dto.ClienteResumen{
		ID:                 c.ID,
		Tipo:               c.Tipo,
		CUIT:               c.CUIT,
		RazonSocial:        c.RazonSocial,
		CondicionIVA:       c.CondicionIVA,
		RazonSocialEmpresa: c.RazonSocialEmpresa,
		DomicilioEmpresa:   c.DomicilioEmpresa,
	}
}
