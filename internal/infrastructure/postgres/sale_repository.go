package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, car_id, customer_id, COALESCE(employee_id, ''), price_sold, sale_date`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, car_id, customer_id, employee_id, price_sold, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CarID, sale.CustomerID, nullIfEmpty(sale.EmployeeID), sale.PriceSold, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.scanOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene una venta bloqueando su fila dentro de la
// transacción activa; fuera de transacción el lock se libera al instante.
func (r *SaleRepo) GetByIDForUpdate(id string) (*entity.Sale, error) {
	return r.scanOne(`SELECT `+saleColumns+` FROM sales WHERE id = $1 FOR UPDATE`, id)
}

func (r *SaleRepo) scanOne(query string, args ...any) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.CarID, &s.CustomerID, &s.EmployeeID, &s.PriceSold, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista todas las ventas.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return r.scanMany(`SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC`)
}

// ListByCustomer lista las ventas de un cliente.
func (r *SaleRepo) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	return r.scanMany(`SELECT `+saleColumns+` FROM sales WHERE customer_id = $1 ORDER BY sale_date DESC`, customerID)
}

// ListByEmployee lista las ventas atendidas por un empleado.
func (r *SaleRepo) ListByEmployee(employeeID string) ([]*entity.Sale, error) {
	return r.scanMany(`SELECT `+saleColumns+` FROM sales WHERE employee_id = $1 ORDER BY sale_date DESC`, employeeID)
}

// ListByCar lista las ventas de un auto.
func (r *SaleRepo) ListByCar(carID string) ([]*entity.Sale, error) {
	return r.scanMany(`SELECT `+saleColumns+` FROM sales WHERE car_id = $1 ORDER BY sale_date DESC`, carID)
}

func (r *SaleRepo) scanMany(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CarID, &s.CustomerID, &s.EmployeeID, &s.PriceSold, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByCar cuenta las ventas que referencian un auto.
func (r *SaleRepo) CountByCar(carID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM sales WHERE car_id = $1`, carID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sales by car: %w", err)
	}
	return n, nil
}

// Update actualiza una venta existente.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET car_id = $2, customer_id = $3, employee_id = $4, price_sold = $5, sale_date = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CarID, sale.CustomerID, nullIfEmpty(sale.EmployeeID), sale.PriceSold, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta; pagos y póliza caen en cascada.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
