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

func TestCarCreate_GerenteCreaAuto(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	out, err := uc.Create(gerente, dto.CreateCarRequest{
		Model: "Corolla",
		Year:  2023,
		VIN:   "VIN-NUEVO",
		Price: decimal.NewFromInt(25000),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Corolla", out.Model)
	// Status vacío cae a available.
	assert.Equal(t, entity.CarAvailable, out.Status)
}

func TestCarCreate_VINDuplicadoRechazado(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	uc := e.carUC()

	_, err := uc.Create(gerente, dto.CreateCarRequest{
		Model: "Otro",
		VIN:   "VIN-car-1",
		Price: decimal.NewFromInt(18000),
	})
	assert.ErrorIs(t, err, domain.ErrVINAlreadyExists)
}

func TestCarCreate_StatusInvalidoRechazado(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	_, err := uc.Create(gerente, dto.CreateCarRequest{
		Model:  "Corolla",
		VIN:    "VIN-X",
		Status: "scrapped",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCarCreate_SoloGerente(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	for _, actor := range []domain.Actor{empleado, cliente} {
		_, err := uc.Create(actor, dto.CreateCarRequest{Model: "X", VIN: "V"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

// ──────────────────────────────────────────────
// List / GetByID
// ──────────────────────────────────────────────

func TestCarList_ClienteSoloVeDisponibles(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	e.seedCar("car-2", entity.CarSold, 22000)
	e.seedCar("car-3", entity.CarReserved, 19000)
	uc := e.carUC()

	list, err := uc.List(cliente, dto.ListCarsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "car-1", list[0].ID)

	// El filtro de status del cliente se ignora: sigue viendo solo disponibles.
	list, err = uc.List(cliente, dto.ListCarsRequest{Status: entity.CarSold})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "car-1", list[0].ID)
}

func TestCarList_EmpleadoFiltraPorStatus(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	e.seedCar("car-2", entity.CarSold, 22000)
	uc := e.carUC()

	list, err := uc.List(empleado, dto.ListCarsRequest{Status: entity.CarSold})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "car-2", list[0].ID)

	// Sin filtro ve todo.
	list, err = uc.List(empleado, dto.ListCarsRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCarList_StatusInvalidoRechazado(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	_, err := uc.List(gerente, dto.ListCarsRequest{Status: "scrapped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCarList_Paginacion(t *testing.T) {
	e := newEnv()
	for _, id := range []string{"car-1", "car-2", "car-3"} {
		e.seedCar(id, entity.CarAvailable, 20000)
	}
	uc := e.carUC()

	list, err := uc.List(gerente, dto.ListCarsRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "car-3", list[0].ID)
}

func TestCarGetByID_ClienteNoVeNoDisponibles(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarSold, 22000)
	uc := e.carUC()

	_, err := uc.GetByID(cliente, "car-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El gerente sí lo ve.
	out, err := uc.GetByID(gerente, "car-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CarSold, out.Status)
}

func TestCarGetByID_NoExiste(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	_, err := uc.GetByID(gerente, "car-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────
// Historiales
// ──────────────────────────────────────────────

func TestCarSalesHistory_EmpleadoVeVentasDelAuto(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarSold, 22000)
	e.seedUser("cust-1", entity.RoleCustomer)
	e.seedSale("sale-1", "car-1", "cust-1", "", 21000)
	uc := e.carUC()

	list, err := uc.SalesHistory(empleado, "car-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sale-1", list[0].ID)

	_, err = uc.SalesHistory(cliente, "car-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCarServicesHistory_AutoInexistente(t *testing.T) {
	e := newEnv()
	uc := e.carUC()

	_, err := uc.ServicesHistory(gerente, "car-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────

func TestCarUpdate_CambioDeVINReverificaUnicidad(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	e.seedCar("car-2", entity.CarAvailable, 21000)
	uc := e.carUC()

	_, err := uc.Update(gerente, "car-1", dto.UpdateCarRequest{VIN: strPtr("VIN-car-2")})
	assert.ErrorIs(t, err, domain.ErrVINAlreadyExists)

	out, err := uc.Update(gerente, "car-1", dto.UpdateCarRequest{
		VIN:    strPtr("VIN-LIBRE"),
		Status: strPtr(entity.CarReserved),
	})
	require.NoError(t, err)
	assert.Equal(t, "VIN-LIBRE", out.VIN)
	assert.Equal(t, entity.CarReserved, out.Status)
}

func TestCarUpdate_MismoVINNoCuentaComoDuplicado(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 20000)
	uc := e.carUC()

	out, err := uc.Update(gerente, "car-1", dto.UpdateCarRequest{
		VIN:   strPtr("VIN-car-1"),
		Price: decPtr(decimal.NewFromInt(19500)),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(19500)))
}

func TestCarDelete_ConDependientesBloqueado(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarSold, 22000)
	e.seedUser("cust-1", entity.RoleCustomer)
	e.seedSale("sale-1", "car-1", "cust-1", "", 21000)
	uc := e.carUC()

	err := uc.Delete(gerente, "car-1")
	assert.ErrorIs(t, err, domain.ErrCarInUse)
}

func TestCarDelete_TestDriveTambienBloquea(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 22000)
	e.seedTestDrive("td-1", "car-1", "cust-1", "")
	uc := e.carUC()

	err := uc.Delete(gerente, "car-1")
	assert.ErrorIs(t, err, domain.ErrCarInUse)
}

func TestCarDelete_SinDependientesElimina(t *testing.T) {
	e := newEnv()
	e.seedCar("car-1", entity.CarAvailable, 22000)
	uc := e.carUC()

	require.NoError(t, uc.Delete(gerente, "car-1"))
	car, err := e.cars.GetByID("car-1")
	require.NoError(t, err)
	assert.Nil(t, car)
}
