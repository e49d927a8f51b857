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

var _ repository.InsuranceRepository = (*InsuranceRepo)(nil)

// InsuranceRepo implementación del puerto InsuranceRepository sobre PostgreSQL.
type InsuranceRepo struct {
	q Querier
}

// NewInsuranceRepository construye el adaptador de persistencia para seguros. Pasar pool o tx (Querier).
func NewInsuranceRepository(q Querier) *InsuranceRepo {
	return &InsuranceRepo{q: q}
}

const insuranceColumns = `id, sale_id, provider, policy_number, start_date, end_date, premium_amount`

// Create persiste una nueva póliza. El UNIQUE sobre sale_id garantiza a lo
// sumo una póliza por venta.
func (r *InsuranceRepo) Create(insurance *entity.Insurance) error {
	query := `
		INSERT INTO insurances (id, sale_id, provider, policy_number, start_date, end_date, premium_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		insurance.ID, insurance.SaleID, insurance.Provider, insurance.PolicyNumber,
		insurance.StartDate, insurance.EndDate, insurance.PremiumAmount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSaleHasInsurance
		}
		return fmt.Errorf("insert insurance: %w", err)
	}
	return nil
}

// GetByID obtiene una póliza por ID.
func (r *InsuranceRepo) GetByID(id string) (*entity.Insurance, error) {
	return r.scanOne(`SELECT `+insuranceColumns+` FROM insurances WHERE id = $1`, id)
}

// GetBySale obtiene la póliza de una venta, si existe.
func (r *InsuranceRepo) GetBySale(saleID string) (*entity.Insurance, error) {
	return r.scanOne(`SELECT `+insuranceColumns+` FROM insurances WHERE sale_id = $1`, saleID)
}

func (r *InsuranceRepo) scanOne(query string, args ...any) (*entity.Insurance, error) {
	var i entity.Insurance
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.SaleID, &i.Provider, &i.PolicyNumber, &i.StartDate, &i.EndDate, &i.PremiumAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insurance: %w", err)
	}
	return &i, nil
}

// List lista pólizas filtrando por vigencia y, opcionalmente, por cliente de
// la venta asociada.
func (r *InsuranceRepo) List(status, customerID string) ([]*entity.Insurance, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT i.id, i.sale_id, i.provider, i.policy_number, i.start_date, i.end_date, i.premium_amount
		FROM insurances i`)

	var conds []string
	var args []any
	if customerID != "" {
		sb.WriteString(` JOIN sales s ON s.id = i.sale_id`)
		args = append(args, customerID)
		conds = append(conds, fmt.Sprintf("s.customer_id = $%d", len(args)))
	}
	switch status {
	case repository.InsuranceActive:
		conds = append(conds, "i.end_date >= now()")
	case repository.InsuranceExpired:
		conds = append(conds, "i.end_date < now()")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY i.start_date DESC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list insurances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Insurance
	for rows.Next() {
		var i entity.Insurance
		if err := rows.Scan(&i.ID, &i.SaleID, &i.Provider, &i.PolicyNumber, &i.StartDate, &i.EndDate, &i.PremiumAmount); err != nil {
			return nil, fmt.Errorf("scan insurance: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza una póliza existente.
func (r *InsuranceRepo) Update(insurance *entity.Insurance) error {
	query := `
		UPDATE insurances SET provider = $2, policy_number = $3, start_date = $4, end_date = $5, premium_amount = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		insurance.ID, insurance.Provider, insurance.PolicyNumber,
		insurance.StartDate, insurance.EndDate, insurance.PremiumAmount,
	)
	if err != nil {
		return fmt.Errorf("update insurance: %w", err)
	}
	return nil
}

// Delete elimina una póliza por ID; los pagos que la referencian quedan con
// insurance_id en NULL.
func (r *InsuranceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM insurances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insurance: %w", err)
	}
	return nil
}
