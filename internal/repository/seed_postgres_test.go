package repository

import (
	"context"
	"testing"

	"github.com/idealiza/admin-service/internal/seed"
)

func TestSeedBatchQueuesEveryRecord(t *testing.T) {
	want := len(seed.Employees()) + len(seed.Vacations()) + len(seed.Attendance()) +
		len(seed.Trainings()) + len(seed.Benefits()) + len(seed.Documents()) + 1 +
		len(seed.PayrollMonths()) + len(seed.DepartmentPayroll()) + len(seed.ClientCosts()) +
		len(seed.Payments()) + len(seed.ReportTypes()) + len(seed.RecentReports())
	dashboard := seed.Dashboard()
	want += len(dashboard.Stats) + len(dashboard.Sales) + len(dashboard.Performance) + len(dashboard.Activities)
	want += 1 + len(seed.ProfileDocuments())

	if got := seedBatch().Len(); got != want {
		t.Fatalf("expected %d queued statements, got %d", want, got)
	}
}

func TestSeedPostgresWithoutPoolIsNoop(t *testing.T) {
	n, err := SeedPostgres(context.Background(), nil)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got %d, %v", n, err)
	}
}
