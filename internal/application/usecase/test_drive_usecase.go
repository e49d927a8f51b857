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

// TestDriveUseCase casos de uso para pruebas de manejo. Cualquier rol
// autenticado agenda; los clientes solo operan sobre las propias. El estado
// no tiene grafo de transiciones: cualquier valor válido sobrescribe.
type TestDriveUseCase struct {
	testDrives repository.TestDriveRepository
	cars       repository.CarRepository
	users      repository.UserRepository
	proj       *Projector
	now        func() time.Time
	log        *logger.Logger
}

// NewTestDriveUseCase construye el caso de uso.
func NewTestDriveUseCase(
	testDrives repository.TestDriveRepository,
	cars repository.CarRepository,
	users repository.UserRepository,
	proj *Projector,
	now func() time.Time,
	log *logger.Logger,
) *TestDriveUseCase {
	return &TestDriveUseCase{testDrives: testDrives, cars: cars, users: users, proj: proj, now: now, log: log}
}

// Create agenda un test drive. Un customer siempre agenda para sí mismo;
// manager y employee pueden indicar el cliente.
func (uc *TestDriveUseCase) Create(actor domain.Actor, in dto.CreateTestDriveRequest) (*dto.TestDriveResponse, error) {
	if _, err := authorize(authz.ResourceTestDrive, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}

	customerID := in.CustomerID
	if actor.Role == entity.RoleCustomer || customerID == "" {
		customerID = actor.ID
	}
	if customerID != actor.ID {
		customer, err := uc.users.GetByIDAndRole(customerID, entity.RoleCustomer)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
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

	scheduledAt := uc.now()
	if in.ScheduledAt != nil {
		scheduledAt = *in.ScheduledAt
	}
	td := &entity.TestDrive{
		ID:          uuid.New().String(),
		CarID:       in.CarID,
		CustomerID:  customerID,
		EmployeeID:  in.EmployeeID,
		ScheduledAt: scheduledAt,
		Status:      entity.TestDriveScheduled,
	}
	if err := uc.testDrives.Create(td); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("test_drive", td.ID).Str("car", td.CarID).Msg("test drive agendado")
	return uc.proj.testDriveResponse(td), nil
}

// List lista test drives: manager todos, employee los asignados, customer los propios.
func (uc *TestDriveUseCase) List(actor domain.Actor) ([]dto.TestDriveResponse, error) {
	effect, err := authorize(authz.ResourceTestDrive, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}
	var list []*entity.TestDrive
	if effect == authz.AllowOwn {
		if actor.Role == entity.RoleEmployee {
			list, err = uc.testDrives.ListByEmployee(actor.ID)
		} else {
			list, err = uc.testDrives.ListByCustomer(actor.ID)
		}
	} else {
		list, err = uc.testDrives.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.proj.testDriveResponses(list), nil
}

// GetByID obtiene un test drive; un customer solo los propios.
func (uc *TestDriveUseCase) GetByID(actor domain.Actor, id string) (*dto.TestDriveResponse, error) {
	effect, err := authorize(authz.ResourceTestDrive, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	td, err := uc.testDrives.GetByID(id)
	if err != nil {
		return nil, err
	}
	if td == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsTestDrive(actor, td) {
		return nil, domain.ErrForbidden
	}
	return uc.proj.testDriveResponse(td), nil
}

// ListByCustomer historial de test drives de un cliente: manager o el propio cliente.
func (uc *TestDriveUseCase) ListByCustomer(actor domain.Actor, customerID string) ([]dto.TestDriveResponse, error) {
	effect, err := authorize(authz.ResourceTestDrive, authz.ActionListByCustomer, actor)
	if err != nil {
		return nil, err
	}
	if effect == authz.AllowOwn && actor.ID != customerID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.testDrives.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return uc.proj.testDriveResponses(list), nil
}

// ListByCar test drives de un auto (manager y employee).
func (uc *TestDriveUseCase) ListByCar(actor domain.Actor, carID string) ([]dto.TestDriveResponse, error) {
	if _, err := authorize(authz.ResourceTestDrive, authz.ActionListByCar, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.testDrives.ListByCar(carID)
	if err != nil {
		return nil, err
	}
	return uc.proj.testDriveResponses(list), nil
}

// Update actualiza un test drive. Un customer solo los propios; reasignar el
// empleado es exclusivo del manager.
func (uc *TestDriveUseCase) Update(actor domain.Actor, id string, in dto.UpdateTestDriveRequest) (*dto.TestDriveResponse, error) {
	td, err := uc.testDrives.GetByID(id)
	if err != nil {
		return nil, err
	}
	if td == nil {
		return nil, domain.ErrNotFound
	}
	effect, err := authorize(authz.ResourceTestDrive, authz.ActionUpdate, actor)
	if err != nil {
		return nil, err
	}
	if effect == authz.AllowOwn && !authz.OwnsTestDrive(actor, td) {
		return nil, domain.ErrForbidden
	}
	if in.EmployeeID != nil && *in.EmployeeID != "" {
		if actor.Role != entity.RoleManager {
			return nil, domain.ErrForbidden
		}
		employee, err := uc.users.GetByIDAndRole(*in.EmployeeID, entity.RoleEmployee)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
		td.EmployeeID = *in.EmployeeID
	}
	if in.Status != nil {
		if !entity.ValidTestDriveStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		td.Status = *in.Status
	}
	if in.ScheduledAt != nil {
		td.ScheduledAt = *in.ScheduledAt
	}
	if err := uc.testDrives.Update(td); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("test_drive", td.ID).Msg("test drive actualizado")
	return uc.proj.testDriveResponse(td), nil
}

// Delete elimina un test drive; un customer solo los propios.
func (uc *TestDriveUseCase) Delete(actor domain.Actor, id string) error {
	td, err := uc.testDrives.GetByID(id)
	if err != nil {
		return err
	}
	if td == nil {
		return domain.ErrNotFound
	}
	effect, err := authorize(authz.ResourceTestDrive, authz.ActionDelete, actor)
	if err != nil {
		return err
	}
	if effect == authz.AllowOwn && !authz.OwnsTestDrive(actor, td) {
		return domain.ErrForbidden
	}
	if err := uc.testDrives.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("test_drive", id).Msg("test drive eliminado")
	return nil
}
