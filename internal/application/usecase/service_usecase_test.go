package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────

func TestServiceCreate_SoloEmpleado(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	uc := e.serviceUC()

	// Ni el gerente ni el cliente registran trabajo de taller.
	_, err := uc.Create(gerente, dto.CreateServiceRequest{CarID: "car-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Create(cliente, dto.CreateServiceRequest{CarID: "car-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Create(empleado, dto.CreateServiceRequest{
		CarID:       "car-1",
		Description: "frenos",
		Cost:        decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.Employee.ID)
	assert.Equal(t, fixedNow, out.ServiceDate)
}

func TestServiceCreate_NadieRegistraTrabajoAjeno(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	uc := e.serviceUC()

	_, err := uc.Create(empleado, dto.CreateServiceRequest{
		CarID:      "car-1",
		EmployeeID: "emp-2",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El propio id sí es aceptado.
	out, err := uc.Create(empleado, dto.CreateServiceRequest{
		CarID:      "car-1",
		EmployeeID: "emp-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", out.Employee.ID)
}

func TestServiceCreate_AutoInexistente(t *testing.T) {
	e := newEnv()
	uc := e.serviceUC()

	_, err := uc.Create(empleado, dto.CreateServiceRequest{CarID: "car-nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────

func TestServiceList_EmpleadoSoloLosSuyos(t *testing.T) {
	e := newEnv()
	e.seedService("svc-1", "car-1", "emp-1")
	e.seedService("svc-2", "car-2", "emp-2")
	uc := e.serviceUC()

	list, err := uc.List(gerente)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List(empleado)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "svc-1", list[0].ID)

	_, err = uc.List(cliente)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestServiceGetByID_EmpleadoSoloLosSuyos(t *testing.T) {
	e := newEnv()
	e.seedService("svc-ajeno", "car-2", "emp-2")
	uc := e.serviceUC()

	_, err := uc.GetByID(empleado, "svc-ajeno")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(gerente, "svc-ajeno")
	require.NoError(t, err)
	assert.Equal(t, "svc-ajeno", out.ID)
}

func TestServiceListByCar_RequiereAutoExistente(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	e.seedService("svc-1", "car-1", "emp-2")
	uc := e.serviceUC()

	// Por auto, el empleado ve también trabajo ajeno.
	list, err := uc.ListByCar(empleado, "car-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListByCar(empleado, "car-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────

func TestServiceUpdate_EmpleadoSoloLosSuyos(t *testing.T) {
	e := newEnv()
	e.seedService("svc-1", "car-1", "emp-1")
	e.seedService("svc-ajeno", "car-2", "emp-2")
	uc := e.serviceUC()

	_, err := uc.Update(empleado, "svc-ajeno", dto.UpdateServiceRequest{
		Description: strPtr("ajuste"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Update(empleado, "svc-1", dto.UpdateServiceRequest{
		Description: strPtr("ajuste"),
		Cost:        decPtr(decimal.NewFromInt(150)),
	})
	require.NoError(t, err)
	assert.Equal(t, "ajuste", out.Description)
	assert.True(t, out.Cost.Equal(decimal.NewFromInt(150)))

	// El gerente modifica cualquiera.
	_, err = uc.Update(gerente, "svc-ajeno", dto.UpdateServiceRequest{Description: strPtr("ok")})
	require.NoError(t, err)
}

func TestServiceDelete_SoloGerente(t *testing.T) {
	e := newEnv()
	e.seedService("svc-1", "car-1", "emp-1")
	uc := e.serviceUC()

	assert.ErrorIs(t, uc.Delete(empleado, "svc-1"), domain.ErrForbidden)
	require.NoError(t, uc.Delete(gerente, "svc-1"))
	assert.ErrorIs(t, uc.Delete(gerente, "svc-1"), domain.ErrNotFound)
}
