package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago válidos.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentLoan = "loan"
)

// ValidPaymentMethod reporta si s es un método de pago conocido.
func ValidPaymentMethod(s string) bool {
	return s == PaymentCash || s == PaymentCard || s == PaymentLoan
}

// Payment representa un pago (posiblemente parcial) asociado a una venta.
// La suma de pagos de una venta nunca puede superar Sale.PriceSold.
type Payment struct {
	ID          string
	SaleID      string
	UserID      string // cliente que paga
	InsuranceID string // opcional
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      string
}
