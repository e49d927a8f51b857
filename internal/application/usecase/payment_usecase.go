package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// PaymentUseCase casos de uso para pagos de ventas. El tope de pagos
// (Σ montos ≤ precio de venta) se verifica dentro de una transacción que
// bloquea la fila de la venta, para que dos pagos concurrentes no puedan
// superarlo en conjunto.
type PaymentUseCase struct {
	payments   repository.PaymentRepository
	sales      repository.SaleRepository
	users      repository.UserRepository
	insurances repository.InsuranceRepository
	tx         PaymentTxRunner
	proj       *Projector
	now        func() time.Time
	log        *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	sales repository.SaleRepository,
	users repository.UserRepository,
	insurances repository.InsuranceRepository,
	tx PaymentTxRunner,
	proj *Projector,
	now func() time.Time,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:   payments,
		sales:      sales,
		users:      users,
		insurances: insurances,
		tx:         tx,
		proj:       proj,
		now:        now,
		log:        log,
	}
}

// Create registra un pago. Un customer solo paga sus propias ventas; un
// manager puede pagar en nombre de un cliente vía UserID.
func (uc *PaymentUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	effect, err := authorize(authz.ResourcePayment, authz.ActionCreate, actor)
	if err != nil {
		return nil, err
	}
	sale, err := uc.sales.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn && sale.CustomerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	payerID := actor.ID
	if in.UserID != "" && actor.Role == entity.RoleManager {
		payer, err := uc.users.GetByIDAndRole(in.UserID, entity.RoleCustomer)
		if err != nil {
			return nil, err
		}
		if payer == nil {
			return nil, domain.ErrNotFound
		}
		payerID = payer.ID
	}

	if in.InsuranceID != "" {
		ins, err := uc.insurances.GetByID(in.InsuranceID)
		if err != nil {
			return nil, err
		}
		if ins == nil {
			return nil, domain.ErrNotFound
		}
	}

	method := in.Method
	if method == "" {
		method = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	paymentDate := uc.now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	payment := &entity.Payment{
		ID:          uuid.New().String(),
		SaleID:      in.SaleID,
		UserID:      payerID,
		InsuranceID: in.InsuranceID,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		Method:      method,
	}

	// Chequeo del tope y escritura en la misma transacción, con la fila de
	// la venta bloqueada: la suma no puede cambiar entre la lectura y el insert.
	err = uc.tx.RunPayment(ctx, func(payments repository.PaymentRepository, sales repository.SaleRepository) error {
		lockedSale, err := sales.GetByIDForUpdate(in.SaleID)
		if err != nil {
			return err
		}
		if lockedSale == nil {
			return domain.ErrNotFound
		}
		total, err := payments.SumBySaleExcluding(in.SaleID, "")
		if err != nil {
			return err
		}
		if total.Add(in.Amount).GreaterThan(lockedSale.PriceSold) {
			return domain.ErrPaymentCeiling
		}
		return payments.Create(payment)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("payment", payment.ID).Str("sale", payment.SaleID).Msg("pago creado")
	return uc.proj.paymentResponse(payment), nil
}

// List lista pagos: manager todos, customer los suyos, employee los de sus ventas.
func (uc *PaymentUseCase) List(actor domain.Actor) ([]dto.PaymentResponse, error) {
	effect, err := authorize(authz.ResourcePayment, authz.ActionList, actor)
	if err != nil {
		return nil, err
	}
	var list []*entity.Payment
	if effect == authz.AllowOwn {
		if actor.Role == entity.RoleEmployee {
			list, err = uc.payments.ListByEmployeeSales(actor.ID)
		} else {
			list, err = uc.payments.ListByUser(actor.ID)
		}
	} else {
		list, err = uc.payments.List()
	}
	if err != nil {
		return nil, err
	}
	return uc.proj.paymentResponses(list), nil
}

// GetByID obtiene un pago con el mismo alcance por rol que List.
func (uc *PaymentUseCase) GetByID(actor domain.Actor, id string) (*dto.PaymentResponse, error) {
	effect, err := authorize(authz.ResourcePayment, authz.ActionGet, actor)
	if err != nil {
		return nil, err
	}
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if effect == authz.AllowOwn {
		sale, err := uc.sales.GetByID(payment.SaleID)
		if err != nil {
			return nil, err
		}
		if !authz.OwnsPayment(actor, payment, sale) {
			return nil, domain.ErrForbidden
		}
	}
	return uc.proj.paymentResponse(payment), nil
}

// ListBySale pagos de una venta; clientes y empleados solo para ventas propias.
func (uc *PaymentUseCase) ListBySale(actor domain.Actor, saleID string) ([]dto.PaymentResponse, error) {
	effect, err := authorize(authz.ResourcePayment, authz.ActionListBySale, actor)
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
	if effect == authz.AllowOwn && !authz.OwnsSale(actor, sale) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.payments.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	return uc.proj.paymentResponses(list), nil
}

// Update actualiza un pago (solo manager). Si cambia el monto, el tope se
// re-verifica en transacción excluyendo el propio pago de la suma.
func (uc *PaymentUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourcePayment, authz.ActionUpdate, actor); err != nil {
		return nil, err
	}
	if in.InsuranceID != nil && *in.InsuranceID != "" {
		ins, err := uc.insurances.GetByID(*in.InsuranceID)
		if err != nil {
			return nil, err
		}
		if ins == nil {
			return nil, domain.ErrNotFound
		}
		payment.InsuranceID = *in.InsuranceID
	}
	if in.PaymentDate != nil {
		payment.PaymentDate = *in.PaymentDate
	}
	if in.Method != nil {
		if !entity.ValidPaymentMethod(*in.Method) {
			return nil, domain.ErrInvalidInput
		}
		payment.Method = *in.Method
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}

	err = uc.tx.RunPayment(ctx, func(payments repository.PaymentRepository, sales repository.SaleRepository) error {
		lockedSale, err := sales.GetByIDForUpdate(payment.SaleID)
		if err != nil {
			return err
		}
		if lockedSale == nil {
			return domain.ErrNotFound
		}
		total, err := payments.SumBySaleExcluding(payment.SaleID, payment.ID)
		if err != nil {
			return err
		}
		if total.Add(payment.Amount).GreaterThan(lockedSale.PriceSold) {
			return domain.ErrPaymentCeiling
		}
		return payments.Update(payment)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("actor", actor.ID).Str("payment", payment.ID).Msg("pago actualizado")
	return uc.proj.paymentResponse(payment), nil
}

// Delete elimina un pago (solo manager).
func (uc *PaymentUseCase) Delete(actor domain.Actor, id string) error {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	if _, err := authorize(authz.ResourcePayment, authz.ActionDelete, actor); err != nil {
		return err
	}
	if err := uc.payments.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actor.ID).Str("payment", id).Msg("pago eliminado")
	return nil
}
