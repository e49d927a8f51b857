package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la venta de un auto a un cliente.
// EmployeeID e InsuranceID son opcionales (string vacío = sin asignar).
type Sale struct {
	ID         string
	CarID      string
	CustomerID string
	EmployeeID string
	PriceSold  decimal.Decimal
	SaleDate   time.Time
}
