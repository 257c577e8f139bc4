package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

type financeRepository struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository builds the repository.
func NewFinanceRepository(pool *pgxpool.Pool) FinanceRepository {
	return &financeRepository{pool: pool}
}

func (r *financeRepository) ListPayrollMonths(ctx context.Context) ([]domain.PayrollMonth, error) {
	const query = `
        SELECT month, year, total::float8, benefits::float8, taxes::float8, deductions::float8, total_cost::float8
        FROM payroll_months ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.PayrollMonth{}
	for rows.Next() {
		var p domain.PayrollMonth
		if err := rows.Scan(&p.Month, &p.Year, &p.Total, &p.Benefits, &p.Taxes, &p.Deductions, &p.TotalCost); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *financeRepository) ListDepartmentPayroll(ctx context.Context) ([]domain.DepartmentPayroll, error) {
	const query = `
        SELECT department, employees, salaries::float8, benefits::float8, taxes::float8
        FROM department_payroll ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.DepartmentPayroll{}
	for rows.Next() {
		var d domain.DepartmentPayroll
		if err := rows.Scan(&d.Department, &d.Employees, &d.Salaries, &d.Benefits, &d.Taxes); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

func (r *financeRepository) ListClientCosts(ctx context.Context) ([]domain.ClientCost, error) {
	const query = `
        SELECT client_id, client, employees, total_cost::float8, avg_cost::float8, contract_value::float8, margin, status
        FROM client_costs ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ClientCost{}
	for rows.Next() {
		var c domain.ClientCost
		if err := rows.Scan(&c.ClientID, &c.Client, &c.Employees, &c.TotalCost, &c.AvgCost, &c.ContractValue, &c.Margin, &c.Status); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *financeRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	const query = `
        SELECT id, date, description, employees, amount::float8, status
        FROM payments ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Date, &p.Description, &p.Employees, &p.Amount, &p.Status); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
