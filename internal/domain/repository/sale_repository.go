package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDForUpdate bloquea la fila de la venta dentro de la transacción
	// activa (SELECT ... FOR UPDATE); fuera de transacción equivale a GetByID.
	GetByIDForUpdate(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	ListByCustomer(customerID string) ([]*entity.Sale, error)
	ListByEmployee(employeeID string) ([]*entity.Sale, error)
	ListByCar(carID string) ([]*entity.Sale, error)
	CountByCar(carID string) (int, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
