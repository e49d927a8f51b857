package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest alta de venta (solo manager).
type CreateSaleRequest struct {
	CarID      string          `json:"car_id"`
	CustomerID string          `json:"customer_id"`
	EmployeeID string          `json:"employee_id"` // opcional
	PriceSold  decimal.Decimal `json:"price_sold"`
}

// UpdateSaleRequest patch de venta; punteros nil = sin cambio.
type UpdateSaleRequest struct {
	EmployeeID *string          `json:"employee_id"`
	PriceSold  *decimal.Decimal `json:"price_sold"`
}

// SaleResponse proyección de venta con referencias mínimas.
type SaleResponse struct {
	ID        string          `json:"id"`
	SaleDate  time.Time       `json:"sale_date"`
	PriceSold decimal.Decimal `json:"price_sold"`
	Car       CarRef          `json:"car"`
	Customer  UserRef         `json:"customer"`
	Employee  *UserRef        `json:"employee,omitempty"`
	Insurance *InsuranceRef   `json:"insurance,omitempty"`
}
