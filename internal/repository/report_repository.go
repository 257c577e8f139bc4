package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/idealiza/admin-service/internal/domain"
)

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) ListReportTypes(ctx context.Context) ([]domain.ReportType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, category FROM report_types ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.ReportType{}
	for rows.Next() {
		var rt domain.ReportType
		if err := rows.Scan(&rt.ID, &rt.Title, &rt.Description, &rt.Category); err != nil {
			return nil, err
		}
		result = append(result, rt)
	}
	return result, rows.Err()
}

func (r *reportRepository) ListRecentReports(ctx context.Context) ([]domain.RecentReport, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, type, generated, size FROM recent_reports ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.RecentReport{}
	for rows.Next() {
		var rr domain.RecentReport
		if err := rows.Scan(&rr.Name, &rr.Type, &rr.Generated, &rr.Size); err != nil {
			return nil, err
		}
		result = append(result, rr)
	}
	return result, rows.Err()
}

// NewPostgresStore wires every Postgres repository on one pool.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return Store{
		Employees: NewEmployeeRepository(pool),
		HR:        NewHRRepository(pool),
		Finance:   NewFinanceRepository(pool),
		Reports:   NewReportRepository(pool),
		Dashboard: NewDashboardRepository(pool),
		Profile:   NewProfileRepository(pool),
	}
}
