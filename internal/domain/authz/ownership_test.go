package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

var (
	cliente  = domain.Actor{ID: "cust-1", Role: entity.RoleCustomer}
	empleado = domain.Actor{ID: "emp-1", Role: entity.RoleEmployee}
	gerente  = domain.Actor{ID: "mgr-1", Role: entity.RoleManager}
)

// ──────────────────────────────────────────────
// Resolutores de propiedad
// ──────────────────────────────────────────────

func TestOwnsCar_ClienteSoloVeDisponibles(t *testing.T) {
	disponible := &entity.Car{ID: "car-1", Status: entity.CarAvailable}
	vendido := &entity.Car{ID: "car-2", Status: entity.CarSold}
	reservado := &entity.Car{ID: "car-3", Status: entity.CarReserved}

	assert.True(t, authz.OwnsCar(cliente, disponible))
	assert.False(t, authz.OwnsCar(cliente, vendido))
	assert.False(t, authz.OwnsCar(cliente, reservado))

	// Empleados y gerentes ven todo.
	assert.True(t, authz.OwnsCar(empleado, vendido))
	assert.True(t, authz.OwnsCar(gerente, reservado))
}

func TestOwnsUser_SoloASiMismo(t *testing.T) {
	assert.True(t, authz.OwnsUser(cliente, &entity.User{ID: "cust-1"}))
	assert.False(t, authz.OwnsUser(cliente, &entity.User{ID: "cust-2"}))
}

func TestOwnsSale_PorRol(t *testing.T) {
	venta := &entity.Sale{ID: "sale-1", CustomerID: "cust-1", EmployeeID: "emp-1"}

	assert.True(t, authz.OwnsSale(cliente, venta))
	assert.True(t, authz.OwnsSale(empleado, venta))
	assert.False(t, authz.OwnsSale(domain.Actor{ID: "cust-2", Role: entity.RoleCustomer}, venta))
	assert.False(t, authz.OwnsSale(domain.Actor{ID: "emp-2", Role: entity.RoleEmployee}, venta))
	// El gerente nunca pasa por el resolutor; si llegara, no posee.
	assert.False(t, authz.OwnsSale(gerente, venta))
}

func TestOwnsSale_VentaSinEmpleadoAsignado(t *testing.T) {
	venta := &entity.Sale{ID: "sale-1", CustomerID: "cust-1", EmployeeID: ""}
	assert.False(t, authz.OwnsSale(empleado, venta))
}

func TestOwnsPayment_ClientePagador(t *testing.T) {
	pago := &entity.Payment{ID: "pay-1", SaleID: "sale-1", UserID: "cust-1"}
	venta := &entity.Sale{ID: "sale-1", CustomerID: "cust-1", EmployeeID: "emp-1"}

	assert.True(t, authz.OwnsPayment(cliente, pago, venta))
	assert.False(t, authz.OwnsPayment(domain.Actor{ID: "cust-2", Role: entity.RoleCustomer}, pago, venta))
}

func TestOwnsPayment_EmpleadoPorVenta(t *testing.T) {
	pago := &entity.Payment{ID: "pay-1", SaleID: "sale-1", UserID: "cust-1"}
	venta := &entity.Sale{ID: "sale-1", CustomerID: "cust-1", EmployeeID: "emp-1"}

	assert.True(t, authz.OwnsPayment(empleado, pago, venta))
	assert.False(t, authz.OwnsPayment(domain.Actor{ID: "emp-2", Role: entity.RoleEmployee}, pago, venta))
	// Sin venta resuelta el empleado no posee.
	assert.False(t, authz.OwnsPayment(empleado, pago, nil))
}

func TestOwnsInsurance_HeredaDeLaVenta(t *testing.T) {
	venta := &entity.Sale{ID: "sale-1", CustomerID: "cust-1"}

	assert.True(t, authz.OwnsInsurance(cliente, venta))
	assert.False(t, authz.OwnsInsurance(domain.Actor{ID: "cust-2", Role: entity.RoleCustomer}, venta))
	assert.False(t, authz.OwnsInsurance(cliente, nil))
	assert.True(t, authz.OwnsInsurance(empleado, venta))
}

func TestOwnsService_EmpleadoQueLoRegistro(t *testing.T) {
	servicio := &entity.Service{ID: "svc-1", EmployeeID: "emp-1"}

	assert.True(t, authz.OwnsService(empleado, servicio))
	assert.False(t, authz.OwnsService(domain.Actor{ID: "emp-2", Role: entity.RoleEmployee}, servicio))
	assert.False(t, authz.OwnsService(cliente, servicio))
}

func TestOwnsTestDrive_PorRol(t *testing.T) {
	td := &entity.TestDrive{ID: "td-1", CustomerID: "cust-1", EmployeeID: "emp-1"}

	assert.True(t, authz.OwnsTestDrive(cliente, td))
	assert.True(t, authz.OwnsTestDrive(empleado, td))
	assert.False(t, authz.OwnsTestDrive(domain.Actor{ID: "cust-2", Role: entity.RoleCustomer}, td))
	assert.False(t, authz.OwnsTestDrive(gerente, td))
}
