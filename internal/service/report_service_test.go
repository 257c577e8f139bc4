package service

import (
	"context"
	"testing"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/events"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

func newReportService() (*ReportService, *recorder) {
	rec, dispatcher := newRecorder()
	store := memoryStore()
	return NewReportService(store.Reports, store.Finance, apperrors.NewValidator(), dispatcher, nopLogger()), rec
}

func TestReportCatalog(t *testing.T) {
	svc, _ := newReportService()
	catalog, err := svc.Catalog(context.Background(), ReportQuery{})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(catalog.Types) != 8 || len(catalog.Recent) != 4 {
		t.Fatalf("unexpected catalog sizes %d/%d", len(catalog.Types), len(catalog.Recent))
	}
	if len(catalog.Departments) != 5 || catalog.Departments[0] != "Limpeza" {
		t.Fatalf("unexpected departments %v", catalog.Departments)
	}
	if len(catalog.Clients) != 5 || catalog.Clients[0] != "Empresa ABC" {
		t.Fatalf("unexpected clients %v", catalog.Clients)
	}
	if catalog.Recent[0].GeneratedLabel != "30/11/2024" {
		t.Fatalf("unexpected generated label %q", catalog.Recent[0].GeneratedLabel)
	}

	catalog, _ = svc.Catalog(context.Background(), ReportQuery{Category: "Financeiro"})
	if len(catalog.Types) != 2 || len(catalog.Categories) != 3 {
		t.Fatalf("category filter must narrow types only, got %d types %v", len(catalog.Types), catalog.Categories)
	}
}

func TestGenerateReport(t *testing.T) {
	svc, rec := newReportService()
	ctx := context.Background()

	_, err := svc.Generate(ctx, dto.GenerateReportRequest{}, "")
	if de := assertCode(t, err, "VALIDATION_FAILED"); de.Message != "Selecione um tipo de relatório" {
		t.Fatalf("unexpected message %q", de.Message)
	}

	_, err = svc.Generate(ctx, dto.GenerateReportRequest{Type: "unknown"}, "")
	assertCode(t, err, "NOT_FOUND")

	_, err = svc.Generate(ctx, dto.GenerateReportRequest{Type: "turnover", StartDate: "2024-12-01", EndDate: "2024-01-01"}, "")
	assertCode(t, err, "VALIDATION_FAILED")

	result, err := svc.Generate(ctx, dto.GenerateReportRequest{Type: "turnover", Department: "Limpeza"}, "teste@email.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Message != "Relatório sendo gerado! Você receberá uma notificação quando estiver pronto." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if got := rec.types(); len(got) != 1 || got[0] != events.EventReportRequested {
		t.Fatalf("expected report_requested, got %v", got)
	}
}

func TestGenerateReportChecksPeriod(t *testing.T) {
	svc, rec := newReportService()
	ctx := context.Background()

	_, err := svc.Generate(ctx, dto.GenerateReportRequest{Type: "client-costs", StartDate: "2024-9-01", EndDate: "2024-10-01"}, "")
	if de := assertCode(t, err, "VALIDATION_FAILED"); de.Details["start_date"] != "Data inicial inválida" {
		t.Fatalf("expected start_date format error, got %v", de.Details)
	}

	_, err = svc.Generate(ctx, dto.GenerateReportRequest{Type: "client-costs", StartDate: "15/01/2024", EndDate: "02/03/2024"}, "")
	if de := assertCode(t, err, "VALIDATION_FAILED"); de.Details["end_date"] != "Data final inválida" {
		t.Fatalf("expected end_date format error, got %v", de.Details)
	}

	_, err = svc.Generate(ctx, dto.GenerateReportRequest{Type: "client-costs", StartDate: "2024-10-01", EndDate: "2024-09-01"}, "")
	if de := assertCode(t, err, "VALIDATION_FAILED"); de.Message != "A data inicial deve ser anterior à data final" {
		t.Fatalf("expected interval error, got %q", de.Message)
	}

	if _, err := svc.Generate(ctx, dto.GenerateReportRequest{Type: "client-costs", StartDate: "2024-09-01", EndDate: "2024-10-01"}, ""); err != nil {
		t.Fatalf("valid period rejected: %v", err)
	}
	if _, err := svc.Generate(ctx, dto.GenerateReportRequest{Type: "client-costs", StartDate: "2024-09-01"}, ""); err != nil {
		t.Fatalf("open period rejected: %v", err)
	}
	if got := len(rec.types()); got != 2 {
		t.Fatalf("expected 2 published requests, got %d", got)
	}
}
