package repository

import "github.com/jhoicas/Concesionaria-api/internal/domain/entity"

// CarFilter filtros y orden para el listado de autos. Los campos string
// vacíos y Year cero se ignoran. SortField se valida contra una lista blanca
// en el adaptador; un campo desconocido cae al orden por defecto (model ASC).
type CarFilter struct {
	Model     string // subcadena, case-insensitive
	Year      int
	Color     string // subcadena, case-insensitive
	Status    string
	SortField string
	SortDesc  bool
	Limit     int
	Offset    int
}

// CarRepository define el puerto de persistencia para Car.
type CarRepository interface {
	Create(car *entity.Car) error
	GetByID(id string) (*entity.Car, error)
	GetByVIN(vin string) (*entity.Car, error)
	List(filter CarFilter) ([]*entity.Car, error)
	Update(car *entity.Car) error
	Delete(id string) error
}
