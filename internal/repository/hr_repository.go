package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

type hrRepository struct {
	pool *pgxpool.Pool
}

// NewHRRepository builds the repository.
func NewHRRepository(pool *pgxpool.Pool) HRRepository {
	return &hrRepository{pool: pool}
}

const vacationColumns = `id, employee_id, employee, start_date, end_date, days, status, type, observations`

func (r *hrRepository) ListVacations(ctx context.Context) ([]domain.VacationRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+vacationColumns+` FROM vacation_requests ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.VacationRequest{}
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	return result, rows.Err()
}

func (r *hrRepository) GetVacation(ctx context.Context, id string) (*domain.VacationRequest, error) {
	return scanVacation(r.pool.QueryRow(ctx, `SELECT `+vacationColumns+` FROM vacation_requests WHERE id=$1`, id))
}

func scanVacation(row pgx.Row) (*domain.VacationRequest, error) {
	var v domain.VacationRequest
	if err := row.Scan(&v.ID, &v.EmployeeID, &v.Employee, &v.StartDate, &v.EndDate, &v.Days, &v.Status, &v.Type, &v.Observations); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *hrRepository) ListAttendance(ctx context.Context) ([]domain.AttendanceSummary, error) {
	const query = `
        SELECT employee_id, employee, present, absent, late, overtime
        FROM attendance_summaries ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.AttendanceSummary{}
	for rows.Next() {
		var a domain.AttendanceSummary
		if err := rows.Scan(&a.EmployeeID, &a.Employee, &a.Present, &a.Absent, &a.Late, &a.Overtime); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *hrRepository) ListTrainings(ctx context.Context) ([]domain.TrainingRecord, error) {
	const query = `
        SELECT id, title, description, employees, completed, due_date, status, category
        FROM training_records ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TrainingRecord{}
	for rows.Next() {
		var tr domain.TrainingRecord
		if err := rows.Scan(&tr.ID, &tr.Title, &tr.Description, &tr.Employees, &tr.Completed, &tr.DueDate, &tr.Status, &tr.Category); err != nil {
			return nil, err
		}
		result = append(result, tr)
	}
	return result, rows.Err()
}

func (r *hrRepository) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	const query = `
        SELECT id, name, type, active_employees, enrolled, monthly_cost::float8, mandatory
        FROM benefits ORDER BY seq`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Benefit{}
	for rows.Next() {
		var b domain.Benefit
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.ActiveEmployees, &b.Enrolled, &b.MonthlyCost, &b.Mandatory); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

const documentColumns = `id, employee_id, employee, type, name, status, due_date, upload_date`

func (r *hrRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	return result, rows.Err()
}

func (r *hrRepository) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	return scanDocument(r.pool.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id=$1`, id))
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var d domain.Document
	if err := row.Scan(&d.ID, &d.EmployeeID, &d.Employee, &d.Type, &d.Name, &d.Status, &d.DueDate, &d.UploadDate); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *hrRepository) DocumentSummary(ctx context.Context) (domain.DocumentSummary, error) {
	var s domain.DocumentSummary
	err := r.pool.QueryRow(ctx, `SELECT complete, pending, expired FROM document_summary WHERE id=1`).
		Scan(&s.Complete, &s.Pending, &s.Expired)
	return s, err
}
