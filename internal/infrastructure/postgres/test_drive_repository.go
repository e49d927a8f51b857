package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.TestDriveRepository = (*TestDriveRepo)(nil)

// TestDriveRepo implementación del puerto TestDriveRepository sobre PostgreSQL.
type TestDriveRepo struct {
	q Querier
}

// NewTestDriveRepository construye el adaptador de persistencia para test drives. Pasar pool o tx (Querier).
func NewTestDriveRepository(q Querier) *TestDriveRepo {
	return &TestDriveRepo{q: q}
}

const testDriveColumns = `id, car_id, customer_id, COALESCE(employee_id, ''), scheduled_at, status`

// Create persiste un nuevo test drive.
func (r *TestDriveRepo) Create(td *entity.TestDrive) error {
	query := `
		INSERT INTO test_drives (id, car_id, customer_id, employee_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		td.ID, td.CarID, td.CustomerID, nullIfEmpty(td.EmployeeID), td.ScheduledAt, td.Status,
	)
	if err != nil {
		return fmt.Errorf("insert test drive: %w", err)
	}
	return nil
}

// GetByID obtiene un test drive por ID.
func (r *TestDriveRepo) GetByID(id string) (*entity.TestDrive, error) {
	var t entity.TestDrive
	err := r.q.QueryRow(context.Background(),
		`SELECT `+testDriveColumns+` FROM test_drives WHERE id = $1`, id,
	).Scan(&t.ID, &t.CarID, &t.CustomerID, &t.EmployeeID, &t.ScheduledAt, &t.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get test drive: %w", err)
	}
	return &t, nil
}

// List lista todos los test drives.
func (r *TestDriveRepo) List() ([]*entity.TestDrive, error) {
	return r.scanMany(`SELECT ` + testDriveColumns + ` FROM test_drives ORDER BY scheduled_at DESC`)
}

// ListByCustomer lista los test drives de un cliente.
func (r *TestDriveRepo) ListByCustomer(customerID string) ([]*entity.TestDrive, error) {
	return r.scanMany(`SELECT `+testDriveColumns+` FROM test_drives WHERE customer_id = $1 ORDER BY scheduled_at DESC`, customerID)
}

// ListByEmployee lista los test drives asignados a un empleado.
func (r *TestDriveRepo) ListByEmployee(employeeID string) ([]*entity.TestDrive, error) {
	return r.scanMany(`SELECT `+testDriveColumns+` FROM test_drives WHERE employee_id = $1 ORDER BY scheduled_at DESC`, employeeID)
}

// ListByCar lista los test drives de un auto.
func (r *TestDriveRepo) ListByCar(carID string) ([]*entity.TestDrive, error) {
	return r.scanMany(`SELECT `+testDriveColumns+` FROM test_drives WHERE car_id = $1 ORDER BY scheduled_at DESC`, carID)
}

func (r *TestDriveRepo) scanMany(query string, args ...any) ([]*entity.TestDrive, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list test drives: %w", err)
	}
	defer rows.Close()
	var list []*entity.TestDrive
	for rows.Next() {
		var t entity.TestDrive
		if err := rows.Scan(&t.ID, &t.CarID, &t.CustomerID, &t.EmployeeID, &t.ScheduledAt, &t.Status); err != nil {
			return nil, fmt.Errorf("scan test drive: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// CountByCar cuenta los test drives que referencian un auto.
func (r *TestDriveRepo) CountByCar(carID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM test_drives WHERE car_id = $1`, carID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count test drives by car: %w", err)
	}
	return n, nil
}

// Update actualiza un test drive existente.
func (r *TestDriveRepo) Update(td *entity.TestDrive) error {
	query := `
		UPDATE test_drives SET car_id = $2, customer_id = $3, employee_id = $4, scheduled_at = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		td.ID, td.CarID, td.CustomerID, nullIfEmpty(td.EmployeeID), td.ScheduledAt, td.Status,
	)
	if err != nil {
		return fmt.Errorf("update test drive: %w", err)
	}
	return nil
}

// Delete elimina un test drive por ID.
func (r *TestDriveRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM test_drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete test drive: %w", err)
	}
	return nil
}
