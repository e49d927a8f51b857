package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest alta de servicio de taller (solo employee).
// EmployeeID, si viene, debe ser el propio actor.
type CreateServiceRequest struct {
	CarID       string          `json:"car_id"`
	EmployeeID  string          `json:"employee_id"` // opcional, solo uno mismo
	Description string          `json:"description"`
	ServiceDate *time.Time      `json:"service_date"` // nil = ahora
	Cost        decimal.Decimal `json:"cost"`
}

// UpdateServiceRequest patch de servicio; punteros nil = sin cambio.
type UpdateServiceRequest struct {
	Description *string          `json:"description"`
	ServiceDate *time.Time       `json:"service_date"`
	Cost        *decimal.Decimal `json:"cost"`
}

// ServiceResponse proyección de servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	ServiceDate time.Time       `json:"service_date"`
	Cost        decimal.Decimal `json:"cost"`
	Car         CarRef          `json:"car"`
	Employee    UserRef         `json:"employee"`
}
