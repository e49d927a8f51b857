package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// TestDriveHandler maneja las peticiones HTTP para TestDrive (protegido).
type TestDriveHandler struct {
	uc *usecase.TestDriveUseCase
}

// NewTestDriveHandler construye el handler.
func NewTestDriveHandler(uc *usecase.TestDriveUseCase) *TestDriveHandler {
	return &TestDriveHandler{uc: uc}
}

// Create agenda un test drive (cualquier rol autenticado).
func (h *TestDriveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTestDriveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CarID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "car_id es requerido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista test drives según el alcance del rol.
func (h *TestDriveHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un test drive.
func (h *TestDriveHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer test drives de un cliente (manager o el propio cliente).
func (h *TestDriveHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCar test drives de un auto (manager y employee).
func (h *TestDriveHandler) ListByCar(c *fiber.Ctx) error {
	out, err := h.uc.ListByCar(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un test drive.
func (h *TestDriveHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTestDriveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un test drive.
func (h *TestDriveHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "test drive eliminado"})
}
