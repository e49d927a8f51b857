package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa el ingreso de un auto al inventario (compra o consignación).
type Supplier struct {
	ID            string
	CarID         string
	ReceivedDate  time.Time
	Source        string
	PurchasePrice decimal.Decimal
}
