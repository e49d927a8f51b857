package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInsuranceRequest alta de seguro (solo manager, una póliza por venta).
type CreateInsuranceRequest struct {
	SaleID        string          `json:"sale_id"`
	Provider      string          `json:"provider"`
	PolicyNumber  string          `json:"policy_number"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	PremiumAmount decimal.Decimal `json:"premium_amount"`
}

// UpdateInsuranceRequest patch de seguro; punteros nil = sin cambio.
type UpdateInsuranceRequest struct {
	Provider      *string          `json:"provider"`
	PolicyNumber  *string          `json:"policy_number"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
	PremiumAmount *decimal.Decimal `json:"premium_amount"`
}

// InsurancePaymentRef pago asociado a la póliza, en proyección reducida.
type InsurancePaymentRef struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
}

// InsuranceResponse proyección de seguro.
type InsuranceResponse struct {
	ID            string                `json:"id"`
	Provider      string                `json:"provider"`
	PolicyNumber  string                `json:"policy_number"`
	StartDate     time.Time             `json:"start_date"`
	EndDate       time.Time             `json:"end_date"`
	PremiumAmount decimal.Decimal       `json:"premium_amount"`
	Sale          SaleRef               `json:"sale"`
	Payments      []InsurancePaymentRef `json:"payments"`
}
