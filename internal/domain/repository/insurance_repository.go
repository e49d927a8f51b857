package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// Filtro de vigencia para el listado de seguros.
const (
	InsuranceAny     = ""
	InsuranceActive  = "active"
	InsuranceExpired = "expired"
)

// InsuranceRepository define el puerto de persistencia para Insurance.
type InsuranceRepository interface {
	Create(insurance *entity.Insurance) error
	GetByID(id string) (*entity.Insurance, error)
	GetBySale(saleID string) (*entity.Insurance, error)
	// List filtra por vigencia (InsuranceAny/Active/Expired respecto de now
	// en el adaptador) y, si customerID no es vacío, por cliente de la venta.
	List(status, customerID string) ([]*entity.Insurance, error)
	Update(insurance *entity.Insurance) error
	Delete(id string) error
}
