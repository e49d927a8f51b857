package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// SaleUseCase casos de uso para ventas. Solo el manager las crea, modifica y
// borra; empleados y clientes leen las propias.
type SaleUseCase struct {
	sales repository.SaleRepository
	cars  repository.CarRepository
	users repository.UserRepository
	proj  *Projector
	now   func() time.Time
	log   *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	sales repository.SaleRepository,
	cars repository.CarRepository,
	users repository.UserRepository,
	proj *Projector,
	now func() time.Time,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{sales: sales, cars: cars, users: users, proj: proj, now: now, log: log}
}

// Create registra una venta (solo manager). CustomerID debe referir a un
// usuario con rol customer y EmployeeID, si viene, a uno con rol employee.
func (uc *SaleUseCase) Create(actor domain.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if _, err := authorize(authz.ResourceSale, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.users.GetByIDAndRole(in.CustomerID, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.EmployeeID != "" {
		employee, err := uc.users.GetByIDAndRole(in.EmployeeID, entity.RoleEmployee)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
	}
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CarID:      in.CarID,
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		PriceSold:  in.PriceSold,
		SaleDate:   uc.now(),
	}
	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("sale", sale.ID).Str("car", sale.CarID).Msg("venta creada")
	return uc.proj.saleResponse(sale), nil
}

// List lista ventas: manager todas, employee las suyas, customer sus compras.
func (uc *SaleUseCase) List(actor domain.Actor) ([]dto.SaleResponse, error) {
	effect, err := authorize(authz.ResourceSale, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}
	var (
		list []*entity.Sale
	)
	if effect == authz.AllowOwn {
		if actor.Role == entity.RoleEmployee {
			list, err = uc.sales.ListByEmployee(actor.ID)
		} else {
			list, err = uc.sales.ListByCustomer(actor.ID)
		}
	} else {
		list, err = uc.sales.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.proj.saleResponses(list), nil
}

// GetByID obtiene una venta; empleados y clientes solo las propias.
func (uc *SaleUseCase) GetByID(actor domain.Actor, id string) (*dto.SaleResponse, error) {
	effect, err := authorize(authz.ResourceSale, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsSale(actor, sale) {
		return nil, domain.ErrForbidden
	}
	return uc.proj.saleResponse(sale), nil
}

// ListByCustomer historial de compras de un cliente: manager o el propio cliente.
func (uc *SaleUseCase) ListByCustomer(actor domain.Actor, customerID string) ([]dto.SaleResponse, error) {
	effect, err := authorize(authz.ResourceSale, authz.ActionListByCustomer, actor)
	if err != nil {
		return nil, err
	}
	if effect == authz.AllowOwn && actor.ID != customerID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.sales.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return uc.proj.saleResponses(list), nil
}

// Update actualiza una venta (solo manager): precio y empleado asignado.
func (uc *SaleUseCase) Update(actor domain.Actor, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourceSale, authz.ActionUpdate, actor); err != nil {
		return nil, err
	}
	if in.EmployeeID != nil && *in.EmployeeID != "" {
		employee, err := uc.users.GetByIDAndRole(*in.EmployeeID, entity.RoleEmployee)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
		sale.EmployeeID = *in.EmployeeID
	}
	if in.PriceSold != nil {
		sale.PriceSold = *in.PriceSold
	}
	if err := uc.sales.Update(sale); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("sale", sale.ID).Msg("venta actualizada")
	return uc.proj.saleResponse(sale), nil
}

// Delete elimina una venta (solo manager).
func (uc *SaleUseCase) Delete(actor domain.Actor, id string) error {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourceSale, authz.ActionDelete, actor); err != nil {
		return err
	}
	if err := uc.sales.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("sale", id).Msg("venta eliminada")
	return nil
}
