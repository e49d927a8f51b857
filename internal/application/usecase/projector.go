package usecase

import (
	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Projector arma las referencias anidadas de las proyecciones resolviendo
// entidades relacionadas. Una relación opcional cuyo registro ya no existe
// se omite en la salida en lugar de fallar la lectura.
type Projector struct {
	users      repository.UserRepository
	cars       repository.CarRepository
	sales      repository.SaleRepository
	insurances repository.InsuranceRepository
	payments   repository.PaymentRepository
}

// NewProjector construye el proyector compartido por los casos de uso.
func NewProjector(
	users repository.UserRepository,
	cars repository.CarRepository,
	sales repository.SaleRepository,
	insurances repository.InsuranceRepository,
	payments repository.PaymentRepository,
) *Projector {
	return &Projector{users: users, cars: cars, sales: sales, insurances: insurances, payments: payments}
}

func (p *Projector) carRef(id string) dto.CarRef {
	ref := dto.CarRef{ID: id}
	if car, err := p.cars.GetByID(id); err == nil && car != nil {
		ref.Model = car.Model
	}
	return ref
}

func (p *Projector) userRef(id string) dto.UserRef {
	ref := dto.UserRef{ID: id}
	if u, err := p.users.GetByID(id); err == nil && u != nil {
		ref.Name = u.Name
		ref.Email = u.Email
	}
	return ref
}

func (p *Projector) optUserRef(id string) *dto.UserRef {
	if id == "" {
		return nil
	}
	ref := p.userRef(id)
	return &ref
}

func (p *Projector) saleRef(id string) dto.SaleRef {
	ref := dto.SaleRef{ID: id}
	if s, err := p.sales.GetByID(id); err == nil && s != nil {
		ref.PriceSold = s.PriceSold
	}
	return ref
}

func (p *Projector) saleResponse(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:        s.ID,
		SaleDate:  s.SaleDate,
		PriceSold: s.PriceSold,
		Car:       p.carRef(s.CarID),
		Customer:  p.userRef(s.CustomerID),
		Employee:  p.optUserRef(s.EmployeeID),
	}
	if ins, err := p.insurances.GetBySale(s.ID); err == nil && ins != nil {
		out.Insurance = &dto.InsuranceRef{ID: ins.ID}
	}
	return out
}

func (p *Projector) saleResponses(list []*entity.Sale) []dto.SaleResponse {
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *p.saleResponse(s))
	}
	return items
}

func (p *Projector) paymentResponse(pm *entity.Payment) *dto.PaymentResponse {
	out := &dto.PaymentResponse{
		ID:          pm.ID,
		Amount:      pm.Amount,
		PaymentDate: pm.PaymentDate,
		Method:      pm.Method,
		Sale:        p.saleRef(pm.SaleID),
		User:        p.userRef(pm.UserID),
	}
	if pm.InsuranceID != "" {
		out.Insurance = &dto.InsuranceRef{ID: pm.InsuranceID}
	}
	return out
}

func (p *Projector) paymentResponses(list []*entity.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, pm := range list {
		items = append(items, *p.paymentResponse(pm))
	}
	return items
}

func (p *Projector) insuranceResponse(ins *entity.Insurance) *dto.InsuranceResponse {
	out := &dto.InsuranceResponse{
		ID:            ins.ID,
		Provider:      ins.Provider,
		PolicyNumber:  ins.PolicyNumber,
		StartDate:     ins.StartDate,
		EndDate:       ins.EndDate,
		PremiumAmount: ins.PremiumAmount,
		Sale:          p.saleRef(ins.SaleID),
		Payments:      []dto.InsurancePaymentRef{},
	}
	if pays, err := p.payments.ListByInsurance(ins.ID); err == nil {
		for _, pm := range pays {
			out.Payments = append(out.Payments, dto.InsurancePaymentRef{
				ID:          pm.ID,
				Amount:      pm.Amount,
				PaymentDate: pm.PaymentDate,
			})
		}
	}
	return out
}

func (p *Projector) serviceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Description: s.Description,
		ServiceDate: s.ServiceDate,
		Cost:        s.Cost,
		Car:         p.carRef(s.CarID),
		Employee:    p.userRef(s.EmployeeID),
	}
}

func (p *Projector) serviceResponses(list []*entity.Service) []dto.ServiceResponse {
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *p.serviceResponse(s))
	}
	return items
}

func (p *Projector) supplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		ReceivedDate:  s.ReceivedDate,
		Source:        s.Source,
		PurchasePrice: s.PurchasePrice,
		Car:           p.carRef(s.CarID),
	}
}

func (p *Projector) testDriveResponse(td *entity.TestDrive) *dto.TestDriveResponse {
	return &dto.TestDriveResponse{
		ID:          td.ID,
		ScheduledAt: td.ScheduledAt,
		Status:      td.Status,
		Car:         p.carRef(td.CarID),
		Customer:    p.userRef(td.CustomerID),
		Employee:    p.optUserRef(td.EmployeeID),
	}
}

func (p *Projector) testDriveResponses(list []*entity.TestDrive) []dto.TestDriveResponse {
	items := make([]dto.TestDriveResponse, 0, len(list))
	for _, td := range list {
		items = append(items, *p.testDriveResponse(td))
	}
	return items
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	return &dto.CarResponse{
		ID:      c.ID,
		Model:   c.Model,
		Year:    c.Year,
		VIN:     c.VIN,
		Price:   c.Price,
		Status:  c.Status,
		Mileage: c.Mileage,
		Color:   c.Color,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
