package service

import (
	"context"
	"testing"

	"github.com/idealiza/admin-service/internal/events"
)

func newHRService() (*HRService, *recorder) {
	rec, dispatcher := newRecorder()
	return NewHRService(memoryStore().HR, dispatcher, nopLogger()), rec
}

func TestHRDefaultsToVacationTab(t *testing.T) {
	svc, _ := newHRService()
	view, err := svc.View(context.Background(), HRQuery{})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Active != HRTabVacation || len(view.Tabs) != 5 {
		t.Fatalf("unexpected view %+v", view)
	}
	block, ok := view.Content.(*VacationBlock)
	if !ok {
		t.Fatalf("expected vacation block, got %T", view.Content)
	}
	if block.Counters.Pending != 1 || block.Counters.Approved != 1 || block.Counters.Completed != 1 {
		t.Fatalf("unexpected counters %+v", block.Counters)
	}
	first := block.Requests[0]
	if first.StartDateLabel != "15/12/2024" || first.DaysLabel != "14 dias" || first.StatusLabel != "Aprovado" {
		t.Fatalf("unexpected labels %+v", first)
	}
}

func TestHRRendersSelectedBlockOnly(t *testing.T) {
	svc, _ := newHRService()
	for _, tab := range []string{HRTabAttendance, HRTabTraining, HRTabBenefits, HRTabDocuments} {
		view, err := svc.View(context.Background(), HRQuery{Tab: tab})
		if err != nil {
			t.Fatalf("%s: %v", tab, err)
		}
		if view.Active != tab {
			t.Fatalf("expected active %s, got %s", tab, view.Active)
		}
		switch tab {
		case HRTabAttendance:
			if _, ok := view.Content.(*AttendanceBlock); !ok {
				t.Fatalf("attendance: got %T", view.Content)
			}
		case HRTabTraining:
			if _, ok := view.Content.(*TrainingBlock); !ok {
				t.Fatalf("training: got %T", view.Content)
			}
		case HRTabBenefits:
			if _, ok := view.Content.(*BenefitsBlock); !ok {
				t.Fatalf("benefits: got %T", view.Content)
			}
		case HRTabDocuments:
			if _, ok := view.Content.(*DocumentsBlock); !ok {
				t.Fatalf("documents: got %T", view.Content)
			}
		}
	}
}

func TestHRUnknownTab(t *testing.T) {
	svc, _ := newHRService()
	_, err := svc.View(context.Background(), HRQuery{Tab: "payroll"})
	assertCode(t, err, "UNKNOWN_TAB")
}

func TestHRAttendanceRates(t *testing.T) {
	svc, _ := newHRService()
	view, _ := svc.View(context.Background(), HRQuery{Tab: HRTabAttendance, Search: "joão"})
	block := view.Content.(*AttendanceBlock)
	if len(block.Rows) != 1 {
		t.Fatalf("expected one row, got %d", len(block.Rows))
	}
	if block.Rows[0].RateLabel != "95.7%" {
		t.Fatalf("expected 95.7%%, got %s", block.Rows[0].RateLabel)
	}
}

func TestHRTrainingProgress(t *testing.T) {
	svc, _ := newHRService()
	view, _ := svc.View(context.Background(), HRQuery{Tab: HRTabTraining, Status: "active"})
	block := view.Content.(*TrainingBlock)
	if len(block.Trainings) != 2 {
		t.Fatalf("expected 2 active trainings, got %d", len(block.Trainings))
	}
	if block.Trainings[0].ProgressLabel != "93.3% concluído" {
		t.Fatalf("unexpected progress %q", block.Trainings[0].ProgressLabel)
	}
}

func TestHRDocumentsListsOutstanding(t *testing.T) {
	svc, _ := newHRService()
	view, _ := svc.View(context.Background(), HRQuery{Tab: HRTabDocuments})
	block := view.Content.(*DocumentsBlock)
	if block.Summary.Complete != 265 || len(block.Pending) != 3 {
		t.Fatalf("unexpected documents block %+v", block)
	}
	labels := []string{block.Pending[0].StatusLabel, block.Pending[1].StatusLabel, block.Pending[2].StatusLabel}
	if labels[0] != "Vencendo" || labels[1] != "Pendente" || labels[2] != "Vencido" || !block.Pending[2].Urgent {
		t.Fatalf("unexpected labels %v", labels)
	}
}

func TestVacationActionsArePlaceholders(t *testing.T) {
	svc, rec := newHRService()
	ctx := context.Background()

	if _, err := svc.ActOnVacation(ctx, "2", events.VacationApprove, "teste@email.com"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	_, err := svc.ActOnVacation(ctx, "1", events.VacationReject, "")
	assertCode(t, err, "BAD_REQUEST")
	_, err = svc.ActOnVacation(ctx, "9", events.VacationApprove, "")
	assertCode(t, err, "NOT_FOUND")
	_, err = svc.ActOnVacation(ctx, "2", events.VacationAction("cancel"), "")
	assertCode(t, err, "BAD_REQUEST")

	if got := rec.types(); len(got) != 1 || got[0] != events.EventVacationActionRequested {
		t.Fatalf("expected a single vacation event, got %v", got)
	}

	view, _ := svc.View(ctx, HRQuery{Tab: HRTabVacation, Status: "pending"})
	if block := view.Content.(*VacationBlock); len(block.Requests) != 1 || block.Requests[0].ID != "2" {
		t.Fatalf("approval must not change status, got %+v", block.Requests)
	}
}

func TestRequestDocument(t *testing.T) {
	svc, rec := newHRService()
	if _, err := svc.RequestDocument(context.Background(), "3", ""); err != nil {
		t.Fatalf("request: %v", err)
	}
	_, err := svc.RequestDocument(context.Background(), "4", "")
	assertCode(t, err, "BAD_REQUEST")
	if got := rec.types(); len(got) != 1 || got[0] != events.EventDocumentRequested {
		t.Fatalf("expected document_requested, got %v", got)
	}
}
