package entity

import "github.com/shopspring/decimal"

// Estados válidos para Car.
const (
	CarAvailable = "available"
	CarSold      = "sold"
	CarReserved  = "reserved"
)

// ValidCarStatus reporta si s es un estado de auto conocido.
func ValidCarStatus(s string) bool {
	return s == CarAvailable || s == CarSold || s == CarReserved
}

// Car representa un auto del inventario del concesionario.
// VIN es único; el auto no puede borrarse mientras tenga registros dependientes.
type Car struct {
	ID      string
	Model   string
	Year    int
	VIN     string
	Price   decimal.Decimal
	Status  string
	Mileage int
	Color   string
}
