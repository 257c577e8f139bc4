package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestMemoryStoreListsSeedInOrder(t *testing.T) {
	store := NewMemoryStore()
	employees, err := store.Employees.List(context.Background())
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	if len(employees) != 5 || employees[0].Name != "João Silva Santos" || employees[4].Name != "Pedro Henrique Souza" {
		t.Fatalf("unexpected roster %v", employees)
	}
}

func TestMemoryStoreGetByID(t *testing.T) {
	store := NewMemoryStore()
	emp, err := store.Employees.GetByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("get employee: %v", err)
	}
	if emp.Name != "Carlos Eduardo Lima" {
		t.Fatalf("unexpected employee %s", emp.Name)
	}
	if _, err := store.Employees.GetByID(context.Background(), "99"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
	if _, err := store.HR.GetVacation(context.Background(), "2"); err != nil {
		t.Fatalf("get vacation: %v", err)
	}
}

func TestMemoryStoreHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryStore()
	if _, err := store.Finance.ListClientCosts(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryStoreDashboardAndProfile(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	dashboard, err := store.Dashboard.Get(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(dashboard.Stats) != 4 || len(dashboard.Sales) != 12 || len(dashboard.Activities) != 5 {
		t.Fatalf("unexpected dashboard %+v", dashboard)
	}

	profile, err := store.Profile.Get(ctx)
	if err != nil || profile.Email != "teste@email.com" {
		t.Fatalf("unexpected profile %+v, %v", profile, err)
	}
	docs, err := store.Profile.ListDocuments(ctx)
	if err != nil || len(docs) != 4 {
		t.Fatalf("unexpected documents %v, %v", docs, err)
	}
	if _, err := store.Profile.GetDocument(ctx, "99"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestPostgresStoreWiresEveryRepository(t *testing.T) {
	store := NewPostgresStore(nil)
	if store.Employees == nil || store.HR == nil || store.Finance == nil || store.Reports == nil ||
		store.Dashboard == nil || store.Profile == nil {
		t.Fatalf("incomplete store %+v", store)
	}
}
