package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByUser(userID string) ([]*entity.Payment, error)
	// ListByEmployeeSales devuelve los pagos de ventas atendidas por el empleado.
	ListByEmployeeSales(employeeID string) ([]*entity.Payment, error)
	ListBySale(saleID string) ([]*entity.Payment, error)
	ListByInsurance(insuranceID string) ([]*entity.Payment, error)
	// SumBySaleExcluding suma los montos de los pagos de la venta, omitiendo
	// excludeID (vacío = no omitir). Se usa para el tope de pagos.
	SumBySaleExcluding(saleID, excludeID string) (decimal.Decimal, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
}
