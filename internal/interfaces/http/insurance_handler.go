package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// InsuranceHandler maneja las peticiones HTTP para Insurance (protegido).
type InsuranceHandler struct {
	uc *usecase.InsuranceUseCase
}

// NewInsuranceHandler construye el handler.
func NewInsuranceHandler(uc *usecase.InsuranceUseCase) *InsuranceHandler {
	return &InsuranceHandler{uc: uc}
}

// Create alta de póliza (solo manager, una por venta).
func (h *InsuranceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInsuranceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SaleID == "" || in.Provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_id y provider son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista pólizas; query status=active|expired filtra por vigencia.
func (h *InsuranceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una póliza.
func (h *InsuranceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBySale obtiene la póliza de una venta.
func (h *InsuranceHandler) GetBySale(c *fiber.Ctx) error {
	out, err := h.uc.GetBySale(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una póliza (solo manager).
func (h *InsuranceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInsuranceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una póliza (solo manager).
func (h *InsuranceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "póliza eliminada"})
}
