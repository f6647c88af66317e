package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despachosur/facturacion-api/internal/application/billing"
	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain/repository"
)

// PrefacturaHandler maneja las peticiones HTTP de prefacturas.
type PrefacturaHandler struct {
	uc *billing.PrefacturaUseCase
}

// NewPrefacturaHandler construye el handler.
func NewPrefacturaHandler(uc *billing.PrefacturaUseCase) *PrefacturaHandler {
	return &PrefacturaHandler{uc: uc}
}

// Create POST /api/prefacturas
func (h *PrefacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.PrefacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefactura, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(prefactura)
}

// List GET /api/prefacturas?cliente_id=...&concepto=importacion
func (h *PrefacturaHandler) List(c *fiber.Ctx) error {
	filter := repository.PrefacturaFilter{
		ClienteID: c.Query("cliente_id"),
		Concepto:  c.Query("concepto"),
	}
	list, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/prefacturas/:id
func (h *PrefacturaHandler) GetByID(c *fiber.Ctx) error {
	prefactura, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prefactura)
}

// Update PUT /api/prefacturas/:id
func (h *PrefacturaHandler) Update(c *fiber.Ctx) error {
	var in dto.PrefacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	prefactura, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prefactura)
}

// Delete DELETE /api/prefacturas/:id
// No verifica facturas dependientes: las que la referencian quedan huérfanas.
func (h *PrefacturaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
