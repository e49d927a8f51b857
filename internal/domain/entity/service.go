package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa un trabajo de taller sobre un auto, realizado por un empleado.
type Service struct {
	ID          string
	CarID       string
	EmployeeID  string
	Description string
	ServiceDate time.Time
	Cost        decimal.Decimal
}
