package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de persistencia para servicios de taller. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `id, car_id, employee_id, description, service_date, cost`

// Create persiste un nuevo servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, car_id, employee_id, description, service_date, cost)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.CarID, service.EmployeeID, service.Description, service.ServiceDate, service.Cost,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(),
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.CarID, &s.EmployeeID, &s.Description, &s.ServiceDate, &s.Cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List lista todos los servicios.
func (r *ServiceRepo) List() ([]*entity.Service, error) {
	return r.scanMany(`SELECT ` + serviceColumns + ` FROM services ORDER BY service_date DESC`)
}

// ListByEmployee lista los servicios realizados por un empleado.
func (r *ServiceRepo) ListByEmployee(employeeID string) ([]*entity.Service, error) {
	return r.scanMany(`SELECT `+serviceColumns+` FROM services WHERE employee_id = $1 ORDER BY service_date DESC`, employeeID)
}

// ListByCar lista los servicios de un auto.
func (r *ServiceRepo) ListByCar(carID string) ([]*entity.Service, error) {
	return r.scanMany(`SELECT `+serviceColumns+` FROM services WHERE car_id = $1 ORDER BY service_date DESC`, carID)
}

func (r *ServiceRepo) scanMany(query string, args ...any) ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.CarID, &s.EmployeeID, &s.Description, &s.ServiceDate, &s.Cost); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByCar cuenta los servicios que referencian un auto.
func (r *ServiceRepo) CountByCar(carID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM services WHERE car_id = $1`, carID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count services by car: %w", err)
	}
	return n, nil
}

// Update actualiza un servicio existente.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services SET car_id = $2, employee_id = $3, description = $4, service_date = $5, cost = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.CarID, service.EmployeeID, service.Description, service.ServiceDate, service.Cost,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
