package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	ListByCar(carID string) ([]*entity.Supplier, error)
	CountByCar(carID string) (int, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
