package repository

import (
	"context"

	"github.com/idealiza/admin-service/internal/domain"
)

// EmployeeRepository reads the employee roster.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// HRRepository reads the records behind the HR tabs.
type HRRepository interface {
	ListVacations(ctx context.Context) ([]domain.VacationRequest, error)
	GetVacation(ctx context.Context, id string) (*domain.VacationRequest, error)
	ListAttendance(ctx context.Context) ([]domain.AttendanceSummary, error)
	ListTrainings(ctx context.Context) ([]domain.TrainingRecord, error)
	ListBenefits(ctx context.Context) ([]domain.Benefit, error)
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	DocumentSummary(ctx context.Context) (domain.DocumentSummary, error)
}

// FinanceRepository reads payroll and cost records.
type FinanceRepository interface {
	ListPayrollMonths(ctx context.Context) ([]domain.PayrollMonth, error)
	ListDepartmentPayroll(ctx context.Context) ([]domain.DepartmentPayroll, error)
	ListClientCosts(ctx context.Context) ([]domain.ClientCost, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// ReportRepository reads the report catalog and history.
type ReportRepository interface {
	ListReportTypes(ctx context.Context) ([]domain.ReportType, error)
	ListRecentReports(ctx context.Context) ([]domain.RecentReport, error)
}

// DashboardRepository reads the dashboard widgets.
type DashboardRepository interface {
	Get(ctx context.Context) (domain.Dashboard, error)
}

// ProfileRepository reads the signed-in user's profile and its documents.
type ProfileRepository interface {
	Get(ctx context.Context) (domain.Profile, error)
	ListDocuments(ctx context.Context) ([]domain.ProfileDocument, error)
	GetDocument(ctx context.Context, id string) (*domain.ProfileDocument, error)
}

// Store bundles every repository of one backend.
type Store struct {
	Employees EmployeeRepository
	HR        HRRepository
	Finance   FinanceRepository
	Reports   ReportRepository
	Dashboard DashboardRepository
	Profile   ProfileRepository
}
