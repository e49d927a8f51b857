package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrVINAlreadyExists   = errors.New("el VIN ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCarInUse           = errors.New("el auto tiene ventas, test drives, servicios o entregas asociadas")
	ErrPaymentCeiling     = errors.New("la suma de pagos supera el precio de venta")
	ErrSaleHasInsurance   = errors.New("la venta ya tiene un seguro asociado")
)
