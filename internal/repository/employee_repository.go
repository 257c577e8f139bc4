package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

const employeeColumns = `
        id, name, email, cpf, rg, birth_date, phone, address, position, department,
        admission_date, contract_type, salary::float8, client, status`

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employees WHERE id=$1`
	return scanEmployee(r.pool.QueryRow(ctx, query, id))
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	if err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.CPF,
		&emp.RG,
		&emp.BirthDate,
		&emp.Phone,
		&emp.Address,
		&emp.Position,
		&emp.Department,
		&emp.AdmissionDate,
		&emp.ContractType,
		&emp.Salary,
		&emp.Client,
		&emp.Status,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
