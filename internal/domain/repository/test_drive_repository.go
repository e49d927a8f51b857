package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// TestDriveRepository define el puerto de persistencia para TestDrive.
type TestDriveRepository interface {
	Create(td *entity.TestDrive) error
	GetByID(id string) (*entity.TestDrive, error)
	List() ([]*entity.TestDrive, error)
	ListByCustomer(customerID string) ([]*entity.TestDrive, error)
	ListByEmployee(employeeID string) ([]*entity.TestDrive, error)
	ListByCar(carID string) ([]*entity.TestDrive, error)
	CountByCar(carID string) (int, error)
	Update(td *entity.TestDrive) error
	Delete(id string) error
}
