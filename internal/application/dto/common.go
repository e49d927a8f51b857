package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Referencias anidadas en proyecciones. Las respuestas nunca exponen más
// campos de una entidad relacionada que los listados acá.

// CarRef referencia mínima a un auto.
type CarRef struct {
	ID    string `json:"id"`
	Model string `json:"model"`
}

// UserRef referencia mínima a un usuario.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SaleRef referencia mínima a una venta.
type SaleRef struct {
	ID        string          `json:"id"`
	PriceSold decimal.Decimal `json:"price_sold"`
}

// InsuranceRef referencia mínima a un seguro.
type InsuranceRef struct {
	ID string `json:"id"`
}

// MessageResponse respuesta simple de confirmación (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
