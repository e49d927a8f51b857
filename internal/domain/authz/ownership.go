package authz

import (
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// Resolutores de propiedad: deciden si un actor "posee" un registro.
// Solo se consultan cuando la tabla de políticas devuelve AllowOwn.

// OwnsCar define la visibilidad de un auto para un cliente: solo los
// disponibles. Empleados y gerentes ven todo (nunca llegan acá con AllowOwn).
func OwnsCar(actor domain.Actor, car *entity.Car) bool {
	if actor.Role == entity.RoleCustomer {
		return car.Status == entity.CarAvailable
	}
	return true
}

// OwnsUser el actor solo se posee a sí mismo.
func OwnsUser(actor domain.Actor, user *entity.User) bool {
	return actor.ID == user.ID
}

// OwnsSale el cliente posee sus compras; el empleado, sus ventas.
func OwnsSale(actor domain.Actor, sale *entity.Sale) bool {
	switch actor.Role {
	case entity.RoleCustomer:
		return sale.CustomerID == actor.ID
	case entity.RoleEmployee:
		return sale.EmployeeID == actor.ID
	}
	return false
}

// OwnsPayment el cliente posee los pagos que realizó; el empleado, los pagos
// de sus ventas (requiere la venta asociada ya resuelta).
func OwnsPayment(actor domain.Actor, payment *entity.Payment, sale *entity.Sale) bool {
	switch actor.Role {
	case entity.RoleCustomer:
		return payment.UserID == actor.ID
	case entity.RoleEmployee:
		return sale != nil && sale.EmployeeID == actor.ID
	}
	return false
}

// OwnsInsurance la propiedad del seguro se hereda de la venta asegurada.
func OwnsInsurance(actor domain.Actor, sale *entity.Sale) bool {
	if actor.Role == entity.RoleCustomer {
		return sale != nil && sale.CustomerID == actor.ID
	}
	return true
}

// OwnsService el empleado posee los servicios que registró.
func OwnsService(actor domain.Actor, service *entity.Service) bool {
	if actor.Role == entity.RoleEmployee {
		return service.EmployeeID == actor.ID
	}
	return false
}

// OwnsTestDrive el cliente posee sus test drives; el empleado, los asignados.
func OwnsTestDrive(actor domain.Actor, td *entity.TestDrive) bool {
	switch actor.Role {
	case entity.RoleCustomer:
		return td.CustomerID == actor.ID
	case entity.RoleEmployee:
		return td.EmployeeID == actor.ID
	}
	return false
}
