package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despachosur/facturacion-api/internal/application/billing"
	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// FacturaHandler maneja las peticiones HTTP de facturas.
type FacturaHandler struct {
	uc    *billing.FacturaUseCase
	pdfUC *billing.FacturaPDFUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *billing.FacturaUseCase, pdfUC *billing.FacturaPDFUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/facturas
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.FacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// List GET /api/facturas?cliente_id=...&estado=emitida
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	filter := repository.FacturaFilter{
		ClienteID: c.Query("cliente_id"),
		Estado:    c.Query("estado"),
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/facturas/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	factura, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(factura)
}

// Update PUT /api/facturas/:id
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	var in dto.FacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(factura)
}

// Delete DELETE /api/facturas/:id
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// PDF GET /api/facturas/:id/pdf
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdfUC.Generar(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
