package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// CarUseCase casos de uso CRUD e historiales para autos del inventario.
type CarUseCase struct {
	cars       repository.CarRepository
	sales      repository.SaleRepository
	testDrives repository.TestDriveRepository
	services   repository.ServiceRepository
	suppliers  repository.SupplierRepository
	proj       *Projector
	log        *logger.Logger
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(
	cars repository.CarRepository,
	sales repository.SaleRepository,
	testDrives repository.TestDriveRepository,
	services repository.ServiceRepository,
	suppliers repository.SupplierRepository,
	proj *Projector,
	log *logger.Logger,
) *CarUseCase {
	return &CarUseCase{
		cars:       cars,
		sales:      sales,
		testDrives: testDrives,
		services:   services,
		suppliers:  suppliers,
		proj:       proj,
		log:        log,
	}
}

// Create crea un auto (solo manager). VIN debe ser único; el constraint de la
// DB es la garantía definitiva, el chequeo previo solo adelanta el error.
func (uc *CarUseCase) Create(actor domain.Actor, in dto.CreateCarRequest) (*dto.CarResponse, error) {
	if _, err := authorize(authz.ResourceCar, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.CarAvailable
	}
	if !entity.ValidCarStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.cars.GetByVIN(in.VIN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrVINAlreadyExists
	}
	car := &entity.Car{
		ID:      uuid.New().String(),
		Model:   in.Model,
		Year:    in.Year,
		VIN:     in.VIN,
		Price:   in.Price,
		Status:  status,
		Mileage: in.Mileage,
		Color:   in.Color,
	}
	if err := uc.cars.Create(car); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("car", car.ID).Str("vin", car.VIN).Msg("auto creado")
	return toCarResponse(car), nil
}

// List lista autos con filtros, orden y paginación. Para customers se fuerza
// status=available antes de aplicar los filtros del usuario.
func (uc *CarUseCase) List(actor domain.Actor, in dto.ListCarsRequest) ([]dto.CarResponse, error) {
	effect, err := authorize(authz.ResourceCar, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}

	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	filter := repository.CarFilter{
		Model:     in.Model,
		Year:      in.Year,
		Color:     in.Color,
		SortField: in.SortField,
		SortDesc:  strings.EqualFold(in.SortOrder, "DESC"),
		Limit:     in.Limit,
		Offset:    (in.Page - 1) * in.Limit,
	}
	if effect == authz.AllowOwn {
		// Filtro forzado por rol: los clientes solo ven autos disponibles.
		filter.Status = entity.CarAvailable
	} else if in.Status != "" {
		if !entity.ValidCarStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		filter.Status = in.Status
	}

	list, err := uc.cars.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarResponse(c))
	}
	return items, nil
}

// GetByID obtiene un auto. Un customer solo puede ver autos disponibles;
// pedir uno no disponible por id devuelve ErrForbidden.
func (uc *CarUseCase) GetByID(actor domain.Actor, id string) (*dto.CarResponse, error) {
	effect, err := authorize(authz.ResourceCar, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsCar(actor, car) {
		return nil, domain.ErrForbidden
	}
	return toCarResponse(car), nil
}

// SalesHistory devuelve las ventas de un auto (manager y employee).
func (uc *CarUseCase) SalesHistory(actor domain.Actor, carID string) ([]dto.SaleResponse, error) {
	if _, err := authorize(authz.ResourceCar, authz.ActionSalesHistory, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.sales.ListByCar(carID)
	if err != nil {
		return nil, err
	}
	return uc.proj.saleResponses(list), nil
}

// ServicesHistory devuelve los servicios de taller de un auto (manager y employee).
func (uc *CarUseCase) ServicesHistory(actor domain.Actor, carID string) ([]dto.ServiceResponse, error) {
	if _, err := authorize(authz.ResourceCar, authz.ActionServicesHistory, actor); err != nil {
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

// Update actualiza un auto (solo manager). Si cambia el VIN se re-verifica unicidad.
func (uc *CarUseCase) Update(actor domain.Actor, id string, in dto.UpdateCarRequest) (*dto.CarResponse, error) {
	car, err := uc.cars.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourceCar, authz.ActionUpdate, actor); err != nil {
		return nil, err
	}
	if in.VIN != nil && *in.VIN != car.VIN {
		existing, err := uc.cars.GetByVIN(*in.VIN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrVINAlreadyExists
		}
		car.VIN = *in.VIN
	}
	if in.Model != nil {
		car.Model = *in.Model
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Price != nil {
		car.Price = *in.Price
	}
	if in.Status != nil {
		if !entity.ValidCarStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		car.Status = *in.Status
	}
	if in.Mileage != nil {
		car.Mileage = *in.Mileage
	}
	if in.Color != nil {
		car.Color = *in.Color
	}
	if err := uc.cars.Update(car); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("car", car.ID).Msg("auto actualizado")
	return toCarResponse(car), nil
}

// Delete elimina un auto (solo manager) si no tiene registros dependientes.
// El guard cuenta ventas, test drives, servicios y entregas; cualquier
// dependiente bloquea el borrado con ErrCarInUse.
func (uc *CarUseCase) Delete(actor domain.Actor, id string) error {
	car, err := uc.cars.GetByID(id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourceCar, authz.ActionDelete, actor); err != nil {
		return err
	}

	counts := []func(string) (int, error){
		uc.sales.CountByCar,
		uc.testDrives.CountByCar,
		uc.services.CountByCar,
		uc.suppliers.CountByCar,
	}
	for _, count := range counts {
		n, err := count(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrCarInUse
		}
	}

	if err := uc.cars.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("car", id).Msg("auto eliminado")
	return nil
}
