// Package authz concentra la política de acceso del concesionario: una tabla
// estática (recurso, acción, rol) → efecto, y los resolutores de propiedad
// que deciden si un actor "posee" un registro cuando el efecto es AllowOwn.
//
// La tabla reemplaza los chequeos de rol dispersos por servicio: toda
// decisión de autorización pasa por Decide, y lo que no figura en la tabla
// queda denegado.
package authz

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// Resource identifica un tipo de entidad ante la tabla de políticas.
type Resource string

const (
	ResourceUser      Resource = "user"
	ResourceCar       Resource = "car"
	ResourceSale      Resource = "sale"
	ResourcePayment   Resource = "payment"
	ResourceInsurance Resource = "insurance"
	ResourceService   Resource = "service"
	ResourceSupplier  Resource = "supplier"
	ResourceTestDrive Resource = "test_drive"
)

// Action identifica una operación sobre un recurso.
type Action string

const (
	ActionCreate Action = "create"
	ActionList   Action = "list"
	ActionGet    Action = "get"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	// Lecturas por relación (sub-recursos).
	ActionListByCar      Action = "list_by_car"
	ActionListByCustomer Action = "list_by_customer"
	ActionListBySale     Action = "list_by_sale"

	// Historiales de un auto (ventas y servicios).
	ActionSalesHistory    Action = "sales_history"
	ActionServicesHistory Action = "services_history"
)

// Effect es el resultado de una decisión de política.
type Effect int

const (
	// Deny el rol no puede ejecutar la acción.
	Deny Effect = iota
	// Allow el rol puede ejecutar la acción sin restricción de alcance.
	Allow
	// AllowOwn el rol puede ejecutar la acción solo sobre registros propios;
	// el caso de uso debe consultar el resolutor de propiedad correspondiente.
	AllowOwn
)

// policy es la tabla exhaustiva de reglas. Toda combinación ausente es Deny.
var policy = map[Resource]map[Action]map[string]Effect{
	ResourceUser: {
		ActionCreate: {entity.RoleManager: Allow},
		ActionList:   {entity.RoleManager: Allow},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionUpdate: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionDelete: {entity.RoleManager: Allow},
	},
	ResourceCar: {
		ActionCreate: {entity.RoleManager: Allow},
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn, // solo autos disponibles
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn, // solo autos disponibles
		},
		ActionUpdate: {entity.RoleManager: Allow},
		ActionDelete: {entity.RoleManager: Allow},
		ActionSalesHistory:    {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionServicesHistory: {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
	},
	ResourceSale: {
		ActionCreate: {entity.RoleManager: Allow},
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionListByCustomer: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionUpdate: {entity.RoleManager: Allow},
		ActionDelete: {entity.RoleManager: Allow},
	},
	ResourcePayment: {
		ActionCreate: {
			entity.RoleManager:  Allow,
			entity.RoleCustomer: AllowOwn, // solo contra ventas propias
		},
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionListBySale: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionUpdate: {entity.RoleManager: Allow},
		ActionDelete: {entity.RoleManager: Allow},
	},
	ResourceInsurance: {
		ActionCreate: {entity.RoleManager: Allow},
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
		ActionListBySale: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
		ActionUpdate: {entity.RoleManager: Allow},
		ActionDelete: {entity.RoleManager: Allow},
	},
	ResourceService: {
		ActionCreate: {entity.RoleEmployee: Allow}, // el empleado solo puede referirse a sí mismo
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
		},
		ActionListByCar: {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionUpdate: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
		},
		ActionDelete: {entity.RoleManager: Allow},
	},
	ResourceSupplier: {
		ActionCreate:    {entity.RoleManager: Allow},
		ActionList:      {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionGet:       {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionListByCar: {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionUpdate:    {entity.RoleManager: Allow},
		ActionDelete:    {entity.RoleManager: Allow},
	},
	ResourceTestDrive: {
		ActionCreate: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: Allow, // agenda para sí mismo
		},
		ActionList: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionGet: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
		ActionListByCustomer: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: AllowOwn,
			entity.RoleCustomer: AllowOwn,
		},
		ActionListByCar: {entity.RoleManager: Allow, entity.RoleEmployee: Allow},
		ActionUpdate: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
		ActionDelete: {
			entity.RoleManager:  Allow,
			entity.RoleEmployee: Allow,
			entity.RoleCustomer: AllowOwn,
		},
	},
}

// Decide busca (resource, action, role) en la tabla. Función pura, sin I/O.
// Cualquier combinación no listada devuelve Deny.
func Decide(resource Resource, action Action, role string) Effect {
	actions, ok := policy[resource]
	if !ok {
		return Deny
	}
	roles, ok := actions[action]
	if !ok {
		return Deny
	}
	effect, ok := roles[role]
	if !ok {
		return Deny
	}
	return effect
}
