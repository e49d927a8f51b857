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

// ServiceUseCase casos de uso para servicios de taller. Los crea un employee
// que solo puede registrarse a sí mismo como responsable; los customers no
// tienen acceso a este recurso.
type ServiceUseCase struct {
	services repository.ServiceRepository
	cars     repository.CarRepository
	proj     *Projector
	now      func() time.Time
	log      *logger.Logger
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(
	services repository.ServiceRepository,
	cars repository.CarRepository,
	proj *Projector,
	now func() time.Time,
	log *logger.Logger,
) *ServiceUseCase {
	return &ServiceUseCase{services: services, cars: cars, proj: proj, now: now, log: log}
}

// Create registra un servicio (solo employee). Si el request trae un
// employee_id distinto del actor, se rechaza: nadie registra trabajo ajeno.
func (uc *ServiceUseCase) Create(actor domain.Actor, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if _, err := authorize(authz.ResourceService, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if in.EmployeeID != "" && in.EmployeeID != actor.ID {
		return nil, domain.ErrForbidden
	}
	serviceDate := uc.now()
	if in.ServiceDate != nil {
		serviceDate = *in.ServiceDate
	}
	service := &entity.Service{
		ID:          uuid.New().String(),
		CarID:       in.CarID,
		EmployeeID:  actor.ID,
		Description: in.Description,
		ServiceDate: serviceDate,
		Cost:        in.Cost,
	}
	if err := uc.services.Create(service); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("service", service.ID).Str("car", service.CarID).Msg("servicio creado")
	return uc.proj.serviceResponse(service), nil
}

// List lista servicios: manager todos, employee los suyos.
func (uc *ServiceUseCase) List(actor domain.Actor) ([]dto.ServiceResponse, error) {
	effect, err := authorize(authz.ResourceService, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}
	var list []*entity.Service
	if effect == authz.AllowOwn {
		list, err = uc.services.ListByEmployee(actor.ID)
	} else {
		list, err = uc.services.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.proj.serviceResponses(list), nil
}

// GetByID obtiene un servicio; un employee solo los propios.
func (uc *ServiceUseCase) GetByID(actor domain.Actor, id string) (*dto.ServiceResponse, error) {
	effect, err := authorize(authz.ResourceService, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	service, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsService(actor, service) {
		return nil, domain.ErrForbidden
	}
	return uc.proj.serviceResponse(service), nil
}

// ListByCar historial de servicios de un auto (manager y employee).
func (uc *ServiceUseCase) ListByCar(actor domain.Actor, carID string) ([]dto.ServiceResponse, error) {
	if _, err := authorize(authz.ResourceService, authz.ActionListByCar, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.services.ListByCar(carID)
	if err != nil {
		return nil, err
	}
	return uc.proj.serviceResponses(list), nil
}

// Update actualiza un servicio: manager cualquiera, employee solo los propios.
func (uc *ServiceUseCase) Update(actor domain.Actor, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	effect, err := authorize(authz.ResourceService, authz.ActionUpdate, actor)
	if err != nil {
		return nil, err
	}
	if effect == authz.AllowOwn && !authz.OwnsService(actor, service) {
		return nil, domain.ErrForbidden
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.ServiceDate != nil {
		service.ServiceDate = *in.ServiceDate
	}
	if in.Cost != nil {
		service.Cost = *in.Cost
	}
	if err := uc.services.Update(service); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("service", service.ID).Msg("servicio actualizado")
	return uc.proj.serviceResponse(service), nil
}

// Delete elimina un servicio (solo manager).
func (uc *ServiceUseCase) Delete(actor domain.Actor, id string) error {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourceService, authz.ActionDelete, actor); err != nil {
		return err
	}
	if err := uc.services.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("service", id).Msg("servicio eliminado")
	return nil
}
