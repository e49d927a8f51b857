package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para ingresos de inventario. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, car_id, received_date, source, purchase_price`

// Create persiste un nuevo ingreso.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, car_id, received_date, source, purchase_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CarID, supplier.ReceivedDate, supplier.Source, supplier.PurchasePrice,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un ingreso por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.CarID, &s.ReceivedDate, &s.Source, &s.PurchasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista todos los ingresos.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	return r.scanMany(`SELECT ` + supplierColumns + ` FROM suppliers ORDER BY received_date DESC`)
}

// ListByCar lista los ingresos de un auto.
func (r *SupplierRepo) ListByCar(carID string) ([]*entity.Supplier, error) {
	return r.scanMany(`SELECT `+supplierColumns+` FROM suppliers WHERE car_id = $1 ORDER BY received_date DESC`, carID)
}

func (r *SupplierRepo) scanMany(query string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CarID, &s.ReceivedDate, &s.Source, &s.PurchasePrice); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountByCar cuenta los ingresos que referencian un auto.
func (r *SupplierRepo) CountByCar(carID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM suppliers WHERE car_id = $1`, carID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers by car: %w", err)
	}
	return n, nil
}

// Update actualiza un ingreso existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET car_id = $2, received_date = $3, source = $4, purchase_price = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CarID, supplier.ReceivedDate, supplier.Source, supplier.PurchasePrice,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un ingreso por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
