package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL.
type CarRepo struct {
	q Querier
}

// NewCarRepository construye el adaptador de persistencia para autos. Pasar pool o tx (Querier).
func NewCarRepository(q Querier) *CarRepo {
	return &CarRepo{q: q}
}

const carColumns = `id, model, year, vin, price, status, mileage, color`

// Lista blanca de campos de orden; un campo desconocido cae al default (model).
var carSortFields = map[string]string{
	"model":   "model",
	"year":    "year",
	"price":   "price",
	"mileage": "mileage",
	"status":  "status",
	"color":   "color",
}

// Create persiste un nuevo auto. El UNIQUE sobre vin es la garantía definitiva.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (id, model, year, vin, price, status, mileage, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		car.ID, car.Model, car.Year, car.VIN, car.Price, car.Status, car.Mileage, car.Color,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVINAlreadyExists
		}
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

// GetByID obtiene un auto por ID.
func (r *CarRepo) GetByID(id string) (*entity.Car, error) {
	return r.scanOne(`SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
}

// GetByVIN obtiene un auto por VIN.
func (r *CarRepo) GetByVIN(vin string) (*entity.Car, error) {
	return r.scanOne(`SELECT `+carColumns+` FROM cars WHERE vin = $1`, vin)
}

func (r *CarRepo) scanOne(query string, args ...any) (*entity.Car, error) {
	var c entity.Car
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Model, &c.Year, &c.VIN, &c.Price, &c.Status, &c.Mileage, &c.Color,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return &c, nil
}

// List lista autos con filtros, orden y paginación.
func (r *CarRepo) List(filter repository.CarFilter) ([]*entity.Car, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + carColumns + ` FROM cars`)

	var conds []string
	var args []any
	if filter.Model != "" {
		args = append(args, "%"+filter.Model+"%")
		conds = append(conds, fmt.Sprintf("model ILIKE $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conds = append(conds, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Color != "" {
		args = append(args, "%"+filter.Color+"%")
		conds = append(conds, fmt.Sprintf("color ILIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sortCol, ok := carSortFields[filter.SortField]
	if !ok {
		sortCol = "model"
	}
	sb.WriteString(" ORDER BY " + sortCol)
	if filter.SortDesc {
		sb.WriteString(" DESC")
	}

	args = append(args, filter.Limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		var c entity.Car
		if err := rows.Scan(&c.ID, &c.Model, &c.Year, &c.VIN, &c.Price, &c.Status, &c.Mileage, &c.Color); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un auto existente.
func (r *CarRepo) Update(car *entity.Car) error {
	query := `
		UPDATE cars SET model = $2, year = $3, vin = $4, price = $5, status = $6, mileage = $7, color = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		car.ID, car.Model, car.Year, car.VIN, car.Price, car.Status, car.Mileage, car.Color,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVINAlreadyExists
		}
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

// Delete elimina un auto por ID. Las FK de ventas, servicios, proveedores y
// test drives respaldan la guarda de integridad del caso de uso.
func (r *CarRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCarInUse
		}
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}
