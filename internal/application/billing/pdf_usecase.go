package billing

import (
	"context"
	"fmt"

	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// FacturaPDFUseCase genera el PDF imprimible de una factura emitida.
type FacturaPDFUseCase struct {
	repo           repository.FacturaRepository
	clienteRepo    repository.ClienteRepository
	prefacturaRepo repository.PrefacturaRepository
	generator      FacturaPDFGenerator
}

// NewFacturaPDFUseCase construye el caso de uso.
func NewFacturaPDFUseCase(
	repo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	prefacturaRepo repository.PrefacturaRepository,
	generator FacturaPDFGenerator,
) *FacturaPDFUseCase {
	return &FacturaPDFUseCase{
		repo:           repo,
		clienteRepo:    clienteRepo,
		prefacturaRepo: prefacturaRepo,
		generator:      generator,
	}
}

// Generar produce el PDF y un nombre de archivo sugerido.
func (uc *FacturaPDFUseCase) Generar(ctx context.Context, id string) ([]byte, string, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if f == nil {
		return nil, "", domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(f.ClienteID)
	if err != nil {
		return nil, "", err
	}
	prefactura, err := uc.prefacturaRepo.GetByID(f.PrefacturaID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerarFacturaPDF(ctx, f, cliente, prefactura)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF de factura %s: %w", id, err)
	}
	filename := fmt.Sprintf("factura_%s_%s-%s.pdf", f.TipoComprobante, f.PuntoVenta, f.NumeroComprobante)
	return pdf, filename, nil
}
