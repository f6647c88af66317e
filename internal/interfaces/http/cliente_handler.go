package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/despachosur/facturacion-api/internal/application/billing"
	"github.com/despachosur/facturacion-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP de clientes y despachantes.
type ClienteHandler struct {
	uc *billing.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *billing.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List GET /api/clientes?tipo=despachante
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cliente)
}

// Update PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OkResponse{Ok: true})
}
