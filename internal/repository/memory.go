package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/seed"
)

// memoryStore serves the literal seed records. Each call returns a fresh copy.
type memoryStore struct{}

// NewMemoryStore returns repositories backed by the in-process seed data.
func NewMemoryStore() Store {
	m := memoryStore{}
	return Store{Employees: m, HR: m, Finance: m, Reports: m, Dashboard: memoryDashboard{}, Profile: memoryProfile{}}
}

func (memoryStore) List(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return seed.Employees(), nil
}

func (memoryStore) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findByID(seed.Employees(), id, func(e domain.Employee) string { return e.ID })
}

func (memoryStore) ListVacations(ctx context.Context) ([]domain.VacationRequest, error) {
	return seed.Vacations(), ctx.Err()
}

func (memoryStore) GetVacation(ctx context.Context, id string) (*domain.VacationRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findByID(seed.Vacations(), id, func(v domain.VacationRequest) string { return v.ID })
}

func (memoryStore) ListAttendance(ctx context.Context) ([]domain.AttendanceSummary, error) {
	return seed.Attendance(), ctx.Err()
}

func (memoryStore) ListTrainings(ctx context.Context) ([]domain.TrainingRecord, error) {
	return seed.Trainings(), ctx.Err()
}

func (memoryStore) ListBenefits(ctx context.Context) ([]domain.Benefit, error) {
	return seed.Benefits(), ctx.Err()
}

func (memoryStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return seed.Documents(), ctx.Err()
}

func (memoryStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findByID(seed.Documents(), id, func(d domain.Document) string { return d.ID })
}

func (memoryStore) DocumentSummary(ctx context.Context) (domain.DocumentSummary, error) {
	return seed.DocumentSummary(), ctx.Err()
}

func (memoryStore) ListPayrollMonths(ctx context.Context) ([]domain.PayrollMonth, error) {
	return seed.PayrollMonths(), ctx.Err()
}

func (memoryStore) ListDepartmentPayroll(ctx context.Context) ([]domain.DepartmentPayroll, error) {
	return seed.DepartmentPayroll(), ctx.Err()
}

func (memoryStore) ListClientCosts(ctx context.Context) ([]domain.ClientCost, error) {
	return seed.ClientCosts(), ctx.Err()
}

func (memoryStore) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return seed.Payments(), ctx.Err()
}

func (memoryStore) ListReportTypes(ctx context.Context) ([]domain.ReportType, error) {
	return seed.ReportTypes(), ctx.Err()
}

func (memoryStore) ListRecentReports(ctx context.Context) ([]domain.RecentReport, error) {
	return seed.RecentReports(), ctx.Err()
}

// memoryDashboard and memoryProfile are split from memoryStore because their
// method names overlap with the HR repository.
type memoryDashboard struct{}

func (memoryDashboard) Get(ctx context.Context) (domain.Dashboard, error) {
	return seed.Dashboard(), ctx.Err()
}

type memoryProfile struct{}

func (memoryProfile) Get(ctx context.Context) (domain.Profile, error) {
	return seed.Profile(), ctx.Err()
}

func (memoryProfile) ListDocuments(ctx context.Context) ([]domain.ProfileDocument, error) {
	return seed.ProfileDocuments(), ctx.Err()
}

func (memoryProfile) GetDocument(ctx context.Context, id string) (*domain.ProfileDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findByID(seed.ProfileDocuments(), id, func(d domain.ProfileDocument) string { return d.ID })
}

// findByID mirrors the postgres repositories by reporting pgx.ErrNoRows on a miss.
func findByID[T any](records []T, id string, key func(T) string) (*T, error) {
	for i := range records {
		if key(records[i]) == id {
			return &records[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}
