package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// Repos en memoria para los tests de casos de uso. Replican el contrato de
// los puertos: las lecturas devuelven (nil, nil) cuando el registro no existe.

// ──────────────────────────────────────────────
// fakeUserRepo
// ──────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDAndRole(id, role string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id && u.Role == role {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeCarRepo
// ──────────────────────────────────────────────

type fakeCarRepo struct {
	cars []*entity.Car
}

func (r *fakeCarRepo) Create(c *entity.Car) error {
	r.cars = append(r.cars, c)
	return nil
}

func (r *fakeCarRepo) GetByID(id string) (*entity.Car, error) {
	for _, c := range r.cars {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCarRepo) GetByVIN(vin string) (*entity.Car, error) {
	for _, c := range r.cars {
		if c.VIN == vin {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCarRepo) List(filter repository.CarFilter) ([]*entity.Car, error) {
	var out []*entity.Car
	for _, c := range r.cars {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Model != "" && !strings.Contains(strings.ToLower(c.Model), strings.ToLower(filter.Model)) {
			continue
		}
		if filter.Year != 0 && c.Year != filter.Year {
			continue
		}
		if filter.Color != "" && !strings.Contains(strings.ToLower(c.Color), strings.ToLower(filter.Color)) {
			continue
		}
		out = append(out, c)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeCarRepo) Update(c *entity.Car) error {
	for i, existing := range r.cars {
		if existing.ID == c.ID {
			r.cars[i] = c
		}
	}
	return nil
}

func (r *fakeCarRepo) Delete(id string) error {
	for i, c := range r.cars {
		if c.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeSaleRepo
// ──────────────────────────────────────────────

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.GetByID(id)
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) { return r.sales, nil }

func (r *fakeSaleRepo) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByEmployee(employeeID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByCar(carID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.CarID == carID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) CountByCar(carID string) (int, error) {
	list, _ := r.ListByCar(carID)
	return len(list), nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	for i, existing := range r.sales {
		if existing.ID == s.ID {
			r.sales[i] = s
		}
	}
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakePaymentRepo
// ──────────────────────────────────────────────

type fakePaymentRepo struct {
	payments []*entity.Payment
	sales    *fakeSaleRepo
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) List() ([]*entity.Payment, error) { return r.payments, nil }

func (r *fakePaymentRepo) ListByUser(userID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByEmployeeSales(employeeID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		sale, _ := r.sales.GetByID(p.SaleID)
		if sale != nil && sale.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByInsurance(insuranceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.InsuranceID == insuranceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SumBySaleExcluding(saleID, excludeID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.payments {
		if p.SaleID == saleID && p.ID != excludeID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r *fakePaymentRepo) Update(p *entity.Payment) error {
	for i, existing := range r.payments {
		if existing.ID == p.ID {
			r.payments[i] = p
		}
	}
	return nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	for i, p := range r.payments {
		if p.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeInsuranceRepo
// ──────────────────────────────────────────────

type fakeInsuranceRepo struct {
	insurances []*entity.Insurance
	sales      *fakeSaleRepo
	now        func() time.Time
}

func (r *fakeInsuranceRepo) Create(ins *entity.Insurance) error {
	r.insurances = append(r.insurances, ins)
	return nil
}

func (r *fakeInsuranceRepo) GetByID(id string) (*entity.Insurance, error) {
	for _, ins := range r.insurances {
		if ins.ID == id {
			return ins, nil
		}
	}
	return nil, nil
}

func (r *fakeInsuranceRepo) GetBySale(saleID string) (*entity.Insurance, error) {
	for _, ins := range r.insurances {
		if ins.SaleID == saleID {
			return ins, nil
		}
	}
	return nil, nil
}

func (r *fakeInsuranceRepo) List(status, customerID string) ([]*entity.Insurance, error) {
	var out []*entity.Insurance
	for _, ins := range r.insurances {
		if status == repository.InsuranceActive && ins.Expired(r.now()) {
			continue
		}
		if status == repository.InsuranceExpired && !ins.Expired(r.now()) {
			continue
		}
		if customerID != "" {
			sale, _ := r.sales.GetByID(ins.SaleID)
			if sale == nil || sale.CustomerID != customerID {
				continue
			}
		}
		out = append(out, ins)
	}
	return out, nil
}

func (r *fakeInsuranceRepo) Update(ins *entity.Insurance) error {
	for i, existing := range r.insurances {
		if existing.ID == ins.ID {
			r.insurances[i] = ins
		}
	}
	return nil
}

func (r *fakeInsuranceRepo) Delete(id string) error {
	for i, ins := range r.insurances {
		if ins.ID == id {
			r.insurances = append(r.insurances[:i], r.insurances[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeServiceRepo
// ──────────────────────────────────────────────

type fakeServiceRepo struct {
	services []*entity.Service
}

func (r *fakeServiceRepo) Create(s *entity.Service) error {
	r.services = append(r.services, s)
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) List() ([]*entity.Service, error) { return r.services, nil }

func (r *fakeServiceRepo) ListByEmployee(employeeID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ListByCar(carID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.CarID == carID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) CountByCar(carID string) (int, error) {
	list, _ := r.ListByCar(carID)
	return len(list), nil
}

func (r *fakeServiceRepo) Update(s *entity.Service) error {
	for i, existing := range r.services {
		if existing.ID == s.ID {
			r.services[i] = s
		}
	}
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeSupplierRepo
// ──────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers = append(r.suppliers, s)
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) { return r.suppliers, nil }

func (r *fakeSupplierRepo) ListByCar(carID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		if s.CarID == carID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) CountByCar(carID string) (int, error) {
	list, _ := r.ListByCar(carID)
	return len(list), nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	for i, existing := range r.suppliers {
		if existing.ID == s.ID {
			r.suppliers[i] = s
		}
	}
	return nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeTestDriveRepo
// ──────────────────────────────────────────────

type fakeTestDriveRepo struct {
	testDrives []*entity.TestDrive
}

func (r *fakeTestDriveRepo) Create(td *entity.TestDrive) error {
	r.testDrives = append(r.testDrives, td)
	return nil
}

func (r *fakeTestDriveRepo) GetByID(id string) (*entity.TestDrive, error) {
	for _, td := range r.testDrives {
		if td.ID == id {
			return td, nil
		}
	}
	return nil, nil
}

func (r *fakeTestDriveRepo) List() ([]*entity.TestDrive, error) { return r.testDrives, nil }

func (r *fakeTestDriveRepo) ListByCustomer(customerID string) ([]*entity.TestDrive, error) {
	var out []*entity.TestDrive
	for _, td := range r.testDrives {
		if td.CustomerID == customerID {
			out = append(out, td)
		}
	}
	return out, nil
}

func (r *fakeTestDriveRepo) ListByEmployee(employeeID string) ([]*entity.TestDrive, error) {
	var out []*entity.TestDrive
	for _, td := range r.testDrives {
		if td.EmployeeID == employeeID {
			out = append(out, td)
		}
	}
	return out, nil
}

func (r *fakeTestDriveRepo) ListByCar(carID string) ([]*entity.TestDrive, error) {
	var out []*entity.TestDrive
	for _, td := range r.testDrives {
		if td.CarID == carID {
			out = append(out, td)
		}
	}
	return out, nil
}

func (r *fakeTestDriveRepo) CountByCar(carID string) (int, error) {
	list, _ := r.ListByCar(carID)
	return len(list), nil
}

func (r *fakeTestDriveRepo) Update(td *entity.TestDrive) error {
	for i, existing := range r.testDrives {
		if existing.ID == td.ID {
			r.testDrives[i] = td
		}
	}
	return nil
}

func (r *fakeTestDriveRepo) Delete(id string) error {
	for i, td := range r.testDrives {
		if td.ID == id {
			r.testDrives = append(r.testDrives[:i], r.testDrives[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────
// fakeTxRunner
// ──────────────────────────────────────────────

// fakeTxRunner ejecuta fn directamente sobre los repos en memoria; acá no hay
// transacción real, solo se respeta el contrato del puerto.
type fakeTxRunner struct {
	payments *fakePaymentRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) RunPayment(_ context.Context, fn func(
	payments repository.PaymentRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(t.payments, t.sales)
}

// ──────────────────────────────────────────────
// entorno compartido
// ──────────────────────────────────────────────

// fixedNow fecha congelada que inyectan todos los tests como reloj.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// Actores de los tres roles, reutilizados en todos los tests del paquete.
var (
	gerente  = domain.Actor{ID: "mgr-1", Role: entity.RoleManager}
	empleado = domain.Actor{ID: "emp-1", Role: entity.RoleEmployee}
	cliente  = domain.Actor{ID: "cust-1", Role: entity.RoleCustomer}
)

// env agrupa los repos en memoria y el proyector que comparten los casos de uso.
type env struct {
	users      *fakeUserRepo
	cars       *fakeCarRepo
	sales      *fakeSaleRepo
	payments   *fakePaymentRepo
	insurances *fakeInsuranceRepo
	services   *fakeServiceRepo
	suppliers  *fakeSupplierRepo
	testDrives *fakeTestDriveRepo
	tx         *fakeTxRunner
	proj       *usecase.Projector
	log        *logger.Logger
}

func newEnv() *env {
	users := &fakeUserRepo{}
	cars := &fakeCarRepo{}
	sales := &fakeSaleRepo{}
	payments := &fakePaymentRepo{sales: sales}
	insurances := &fakeInsuranceRepo{sales: sales, now: func() time.Time { return fixedNow }}
	e := &env{
		users:      users,
		cars:       cars,
		sales:      sales,
		payments:   payments,
		insurances: insurances,
		services:   &fakeServiceRepo{},
		suppliers:  &fakeSupplierRepo{},
		testDrives: &fakeTestDriveRepo{},
		tx:         &fakeTxRunner{payments: payments, sales: sales},
		proj:       usecase.NewProjector(users, cars, sales, insurances, payments),
		log:        logger.Nop(),
	}
	return e
}

func (e *env) now() time.Time { return fixedNow }

// Seeds con valores por defecto razonables; los tests sobrescriben lo que les importa.

func (e *env) seedUser(id, role string) *entity.User {
	u := &entity.User{
		ID:    id,
		Name:  "Usuario " + id,
		Email: id + "@concesionaria.test",
		Role:  role,
	}
	e.users.users = append(e.users.users, u)
	return u
}

func (e *env) seedCar(id, status string, price int64) *entity.Car {
	c := &entity.Car{
		ID:     id,
		Model:  "Modelo " + id,
		Year:   2022,
		VIN:    "VIN-" + id,
		Price:  decimal.NewFromInt(price),
		Status: status,
		Color:  "gris",
	}
	e.cars.cars = append(e.cars.cars, c)
	return c
}

func (e *env) seedSale(id, carID, customerID, employeeID string, priceSold int64) *entity.Sale {
	s := &entity.Sale{
		ID:         id,
		CarID:      carID,
		CustomerID: customerID,
		EmployeeID: employeeID,
		PriceSold:  decimal.NewFromInt(priceSold),
		SaleDate:   fixedNow,
	}
	e.sales.sales = append(e.sales.sales, s)
	return s
}

func (e *env) seedPayment(id, saleID, userID string, amount int64) *entity.Payment {
	p := &entity.Payment{
		ID:          id,
		SaleID:      saleID,
		UserID:      userID,
		Amount:      decimal.NewFromInt(amount),
		PaymentDate: fixedNow,
		Method:      entity.PaymentCash,
	}
	e.payments.payments = append(e.payments.payments, p)
	return p
}

func (e *env) seedInsurance(id, saleID string, start, end time.Time) *entity.Insurance {
	ins := &entity.Insurance{
		ID:            id,
		SaleID:        saleID,
		Provider:      "Aseguradora Test",
		PolicyNumber:  "POL-" + id,
		StartDate:     start,
		EndDate:       end,
		PremiumAmount: decimal.NewFromInt(500),
	}
	e.insurances.insurances = append(e.insurances.insurances, ins)
	return ins
}

func (e *env) seedService(id, carID, employeeID string) *entity.Service {
	s := &entity.Service{
		ID:          id,
		CarID:       carID,
		EmployeeID:  employeeID,
		Description: "cambio de aceite",
		ServiceDate: fixedNow,
		Cost:        decimal.NewFromInt(120),
	}
	e.services.services = append(e.services.services, s)
	return s
}

func (e *env) seedTestDrive(id, carID, customerID, employeeID string) *entity.TestDrive {
	td := &entity.TestDrive{
		ID:          id,
		CarID:       carID,
		CustomerID:  customerID,
		EmployeeID:  employeeID,
		ScheduledAt: fixedNow,
		Status:      entity.TestDriveScheduled,
	}
	e.testDrives.testDrives = append(e.testDrives.testDrives, td)
	return td
}

// Constructores de casos de uso sobre el entorno.

func (e *env) carUC() *usecase.CarUseCase {
	return usecase.NewCarUseCase(e.cars, e.sales, e.testDrives, e.services, e.suppliers, e.proj, e.log)
}

func (e *env) saleUC() *usecase.SaleUseCase {
	return usecase.NewSaleUseCase(e.sales, e.cars, e.users, e.proj, e.now, e.log)
}

func (e *env) paymentUC() *usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(e.payments, e.sales, e.users, e.insurances, e.tx, e.proj, e.now, e.log)
}

func (e *env) insuranceUC() *usecase.InsuranceUseCase {
	return usecase.NewInsuranceUseCase(e.insurances, e.sales, e.proj, e.log)
}

func (e *env) serviceUC() *usecase.ServiceUseCase {
	return usecase.NewServiceUseCase(e.services, e.cars, e.proj, e.now, e.log)
}

func (e *env) supplierUC() *usecase.SupplierUseCase {
	return usecase.NewSupplierUseCase(e.suppliers, e.cars, e.proj, e.now, e.log)
}

func (e *env) testDriveUC() *usecase.TestDriveUseCase {
	return usecase.NewTestDriveUseCase(e.testDrives, e.cars, e.users, e.proj, e.now, e.log)
}

func (e *env) userUC() *usecase.UserUseCase {
	return usecase.NewUserUseCase(e.users, e.now, e.log)
}

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
