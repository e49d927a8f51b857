package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// InsuranceUseCase casos de uso para pólizas de seguro: a lo sumo una por
// venta y con vigencia bien ordenada (inicio estrictamente anterior al fin).
type InsuranceUseCase struct {
	insurances repository.InsuranceRepository
	sales      repository.SaleRepository
	proj       *Projector
	log        *logger.Logger
}

// NewInsuranceUseCase construye el caso de uso.
func NewInsuranceUseCase(
	insurances repository.InsuranceRepository,
	sales repository.SaleRepository,
	proj *Projector,
	log *logger.Logger,
) *InsuranceUseCase {
	return &InsuranceUseCase{insurances: insurances, sales: sales, proj: proj, log: log}
}

// Create emite una póliza (solo manager). La venta no debe tener ya una; el
// constraint UNIQUE(sale_id) de la DB respalda el chequeo previo.
func (uc *InsuranceUseCase) Create(actor domain.Actor, in dto.CreateInsuranceRequest) (*dto.InsuranceResponse, error) {
	if _, err := authorize(authz.ResourceInsurance, authz.ActionCreate, actor); err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.insurances.GetBySale(in.SaleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSaleHasInsurance
	}
	if !in.StartDate.Before(in.EndDate) {
		return nil, domain.ErrInvalidInput
	}
	ins := &entity.Insurance{
		ID:            uuid.New().String(),
		SaleID:        in.SaleID,
		Provider:      in.Provider,
		PolicyNumber:  in.PolicyNumber,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		PremiumAmount: in.PremiumAmount,
	}
	if err := uc.insurances.Create(ins); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("insurance", ins.ID).Str("sale", ins.SaleID).Msg("seguro creado")
	return uc.proj.insuranceResponse(ins), nil
}

// List lista pólizas filtrando por vigencia; los clientes solo ven las suyas.
func (uc *InsuranceUseCase) List(actor domain.Actor, status string) ([]dto.InsuranceResponse, error) {
	effect, err := authorize(authz.ResourceInsurance, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}
	if status != repository.InsuranceAny && status != repository.InsuranceActive && status != repository.InsuranceExpired {
		return nil, domain.ErrInvalidInput
	}
	customerID := ""
	if effect == authz.AllowOwn {
		customerID = actor.ID
	}
	list, err := uc.insurances.List(status, customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InsuranceResponse, 0, len(list))
	for _, ins := range list {
		items = append(items, *uc.proj.insuranceResponse(ins))
	}
	return items, nil
}

// GetByID obtiene una póliza; un cliente solo la de sus propias ventas.
func (uc *InsuranceUseCase) GetByID(actor domain.Actor, id string) (*dto.InsuranceResponse, error) {
	effect, err := authorize(authz.ResourceInsurance, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	ins, err := uc.insurances.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn {
		sale, err := uc.sales.GetByID(ins.SaleID)
		if err != nil {
			return nil, err
		}
		if !authz.OwnsInsurance(actor, sale) {
			return nil, domain.ErrForbidden
		}
	}
	return uc.proj.insuranceResponse(ins), nil
}

// GetBySale obtiene la póliza de una venta, con el mismo alcance que GetByID.
func (uc *InsuranceUseCase) GetBySale(actor domain.Actor, saleID string) (*dto.InsuranceResponse, error) {
	effect, err := authorize(authz.ResourceInsurance, authz.ActionListBySale, actor)
	if err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && !authz.OwnsInsurance(actor, sale) {
		return nil, domain.ErrForbidden
	}
	ins, err := uc.insurances.GetBySale(saleID)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, domain.ErrNotFound
	}
	return uc.proj.insuranceResponse(ins), nil
}

// Update actualiza una póliza (solo manager). Si cambia alguna fecha, el par
// resultante debe seguir bien ordenado.
func (uc *InsuranceUseCase) Update(actor domain.Actor, id string, in dto.UpdateInsuranceRequest) (*dto.InsuranceResponse, error) {
	if _, err := authorize(authz.ResourceInsurance, authz.ActionUpdate, actor); err != nil {
		return nil, err
	}
	ins, err := uc.insurances.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ins == nil {
		return nil, domain.ErrNotFound
	}
	start, end := ins.StartDate, ins.EndDate
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil {
		end = *in.EndDate
	}
	if !start.Before(end) {
		return nil, domain.ErrInvalidInput
	}
	ins.StartDate = start
	ins.EndDate = end
	if in.Provider != nil {
		ins.Provider = *in.Provider
	}
	if in.PolicyNumber != nil {
		ins.PolicyNumber = *in.PolicyNumber
	}
	if in.PremiumAmount != nil {
		ins.PremiumAmount = *in.PremiumAmount
	}
	if err := uc.insurances.Update(ins); err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("insurance", ins.ID).Msg("seguro actualizado")
	return uc.proj.insuranceResponse(ins), nil
}

// Delete elimina una póliza (solo manager).
func (uc *InsuranceUseCase) Delete(actor domain.Actor, id string) error {
	if _, err := authorize(authz.ResourceInsurance, authz.ActionDelete, actor); err != nil {
		return err
	}
	ins, err := uc.insurances.GetByID(id)
	if err != nil {
		return err
	}
	if ins == nil {
		return domain.ErrNotFound
	}
	if err := uc.insurances.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("insurance", id).Msg("seguro eliminado")
	return nil
}
