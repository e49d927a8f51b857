package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insurance representa la póliza de seguro de una venta (a lo sumo una por venta).
// StartDate debe ser estrictamente anterior a EndDate.
type Insurance struct {
	ID            string
	SaleID        string
	Provider      string
	PolicyNumber  string
	StartDate     time.Time
	EndDate       time.Time
	PremiumAmount decimal.Decimal
}

// Expired reporta si la póliza ya venció respecto de now.
func (i *Insurance) Expired(now time.Time) bool {
	return i.EndDate.Before(now)
}
