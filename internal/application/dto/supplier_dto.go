package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest alta de ingreso de auto (solo manager).
type CreateSupplierRequest struct {
	CarID         string          `json:"car_id"`
	ReceivedDate  *time.Time      `json:"received_date"` // nil = ahora
	Source        string          `json:"source"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// UpdateSupplierRequest patch de entrega; punteros nil = sin cambio.
type UpdateSupplierRequest struct {
	ReceivedDate  *time.Time       `json:"received_date"`
	Source        *string          `json:"source"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
}

// SupplierResponse proyección de entrega.
type SupplierResponse struct {
	ID            string          `json:"id"`
	ReceivedDate  time.Time       `json:"received_date"`
	Source        string          `json:"source"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Car           CarRef          `json:"car"`
}
