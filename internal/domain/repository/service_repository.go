package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	List() ([]*entity.Service, error)
	ListByEmployee(employeeID string) ([]*entity.Service, error)
	ListByCar(carID string) ([]*entity.Service, error)
	CountByCar(carID string) (int, error)
	Update(service *entity.Service) error
	Delete(id string) error
}
