package usecase

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/authz"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// PaymentTxRunner ejecuta fn dentro de una transacción con repos atados a
// ella. El caso de uso de pagos lo usa para que la verificación del tope
// (suma de pagos ≤ precio de venta) y la escritura sean atómicas: la fila de
// la venta se bloquea vía SaleRepository.GetByIDForUpdate antes de sumar.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		payments repository.PaymentRepository,
		sales repository.SaleRepository,
	) error) error
}

// authorize consulta la tabla de políticas y traduce Deny a ErrForbidden.
// Si devuelve AllowOwn, el llamador debe verificar propiedad con authz.Owns*.
func authorize(resource authz.Resource, action authz.Action, actor domain.Actor) (authz.Effect, error) {
	effect := authz.Decide(resource, action, actor.Role)
	if effect == authz.Deny {
		return effect, domain.ErrForbidden
	}
	return effect, nil
}
