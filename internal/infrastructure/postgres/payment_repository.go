package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, sale_id, user_id, COALESCE(insurance_id, ''), amount, payment_date, method`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, sale_id, user_id, insurance_id, amount, payment_date, method)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.UserID, nullIfEmpty(payment.InsuranceID),
		payment.Amount, payment.PaymentDate, payment.Method,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	var p entity.Payment
	err := r.q.QueryRow(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &p.SaleID, &p.UserID, &p.InsuranceID, &p.Amount, &p.PaymentDate, &p.Method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// List lista todos los pagos.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	return r.scanMany(`SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC`)
}

// ListByUser lista los pagos hechos por un usuario.
func (r *PaymentRepo) ListByUser(userID string) ([]*entity.Payment, error) {
	return r.scanMany(`SELECT `+paymentColumns+` FROM payments WHERE user_id = $1 ORDER BY payment_date DESC`, userID)
}

// ListByEmployeeSales lista los pagos de ventas atendidas por un empleado.
func (r *PaymentRepo) ListByEmployeeSales(employeeID string) ([]*entity.Payment, error) {
	query := `
		SELECT p.id, p.sale_id, p.user_id, COALESCE(p.insurance_id, ''), p.amount, p.payment_date, p.method
		FROM payments p
		JOIN sales s ON s.id = p.sale_id
		WHERE s.employee_id = $1
		ORDER BY p.payment_date DESC`
	return r.scanMany(query, employeeID)
}

// ListBySale lista los pagos de una venta.
func (r *PaymentRepo) ListBySale(saleID string) ([]*entity.Payment, error) {
	return r.scanMany(`SELECT `+paymentColumns+` FROM payments WHERE sale_id = $1 ORDER BY payment_date DESC`, saleID)
}

// ListByInsurance lista los pagos asociados a una póliza.
func (r *PaymentRepo) ListByInsurance(insuranceID string) ([]*entity.Payment, error) {
	return r.scanMany(`SELECT `+paymentColumns+` FROM payments WHERE insurance_id = $1 ORDER BY payment_date DESC`, insuranceID)
}

func (r *PaymentRepo) scanMany(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.SaleID, &p.UserID, &p.InsuranceID, &p.Amount, &p.PaymentDate, &p.Method); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SumBySaleExcluding suma los montos de los pagos de la venta, omitiendo
// excludeID (vacío = no omitir). Dentro de una tx con la venta bloqueada,
// esta suma es la base del tope de pagos.
func (r *PaymentRepo) SumBySaleExcluding(saleID, excludeID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE sale_id = $1 AND id <> $2`,
		saleID, excludeID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments by sale: %w", err)
	}
	return total, nil
}

// Update actualiza un pago existente.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET sale_id = $2, user_id = $3, insurance_id = $4, amount = $5, payment_date = $6, method = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.SaleID, payment.UserID, nullIfEmpty(payment.InsuranceID),
		payment.Amount, payment.PaymentDate, payment.Method,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
