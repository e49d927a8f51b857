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

// SupplierUseCase casos de uso para ingresos de autos al inventario.
// Escrituras de manager; lecturas de manager y employee.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	cars      repository.CarRepository
	proj      *Projector
	now       func() time.Time
	log       *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	suppliers repository.SupplierRepository,
	cars repository.CarRepository,
	proj *Projector,
	now func() time.Time,
	log *logger.Logger,
) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, cars: cars, proj: proj, now: now, log: log}
}

// Create registra el ingreso de un auto (solo manager).
func (uc *SupplierUseCase) Create(actor domain.Actor, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	receivedDate := uc.now()
	if in.ReceivedDate != nil {
		receivedDate = *in.ReceivedDate
	}
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		CarID:         in.CarID,
		ReceivedDate:  receivedDate,
		Source:        in.Source,
		PurchasePrice: in.PurchasePrice,
	}
	if err := uc.suppliers.Create(supplier); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("supplier", supplier.ID).Str("car", supplier.CarID).Msg("entrega creada")
	return uc.proj.supplierResponse(supplier), nil
}

// List lista entregas (manager y employee).
func (uc *SupplierUseCase) List(actor domain.Actor) ([]dto.SupplierResponse, error) {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionList, actor); err != nil {
		return nil, err
	}
	list, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *uc.proj.supplierResponse(s))
	}
	return items, nil
}

// GetByID obtiene una entrega (manager y employee).
func (uc *SupplierUseCase) GetByID(actor domain.Actor, id string) (*dto.SupplierResponse, error) {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionGet, actor); err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return uc.proj.supplierResponse(supplier), nil
}

// ListByCar historial de entregas de un auto (manager y employee).
func (uc *SupplierUseCase) ListByCar(actor domain.Actor, carID string) ([]dto.SupplierResponse, error) {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionListByCar, actor); err != nil {
		return nil, err
	}
	car, err := uc.cars.GetByID(carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.suppliers.ListByCar(carID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *uc.proj.supplierResponse(s))
	}
	return items, nil
}

// Update actualiza una entrega (solo manager).
func (uc *SupplierUseCase) Update(actor domain.Actor, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionUpdate, actor); err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.ReceivedDate != nil {
		supplier.ReceivedDate = *in.ReceivedDate
	}
	if in.Source != nil {
		supplier.Source = *in.Source
	}
	if in.PurchasePrice != nil {
		supplier.PurchasePrice = *in.PurchasePrice
	}
	if err := uc.suppliers.Update(supplier); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("supplier", supplier.ID).Msg("entrega actualizada")
	return uc.proj.supplierResponse(supplier), nil
}

// Delete elimina una entrega (solo manager).
func (uc *SupplierUseCase) Delete(actor domain.Actor, id string) error {
	if _, err := authorize(authz.ResourceSupplier, authz.ActionDelete, actor); err != nil {
		return err
	}
	supplier, err := uc.suppliers.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := uc.suppliers.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("supplier", id).Msg("entrega eliminada")
	return nil
}
