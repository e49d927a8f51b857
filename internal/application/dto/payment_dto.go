package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest alta de pago. UserID solo lo puede fijar un manager
// (pago en nombre de un cliente); para customers se ignora y se usa el actor.
type CreatePaymentRequest struct {
	SaleID      string          `json:"sale_id"`
	UserID      string          `json:"user_id"`      // opcional, solo manager
	InsuranceID string          `json:"insurance_id"` // opcional
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"payment_date"` // nil = ahora
	Method      string          `json:"method"`       // vacío = cash
}

// UpdatePaymentRequest patch de pago; punteros nil = sin cambio.
type UpdatePaymentRequest struct {
	InsuranceID *string          `json:"insurance_id"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *time.Time       `json:"payment_date"`
	Method      *string          `json:"method"`
}

// PaymentResponse proyección de pago con referencias mínimas.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Method      string          `json:"method"`
	Sale        SaleRef         `json:"sale"`
	User        UserRef         `json:"user"`
	Insurance   *InsuranceRef   `json:"insurance,omitempty"`
}
