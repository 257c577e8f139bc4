package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/filter"
	"github.com/idealiza/admin-service/internal/format"
	"github.com/idealiza/admin-service/internal/repository"
	"github.com/idealiza/admin-service/internal/tabs"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// HR tab identifiers.
const (
	HRTabVacation   = "vacation"
	HRTabAttendance = "attendance"
	HRTabTraining   = "training"
	HRTabBenefits   = "benefits"
	HRTabDocuments  = "documents"
)

var hrTabs = tabs.NewSet(
	tabs.Tab{ID: HRTabVacation, Label: "Férias"},
	tabs.Tab{ID: HRTabAttendance, Label: "Frequência"},
	tabs.Tab{ID: HRTabTraining, Label: "Treinamentos"},
	tabs.Tab{ID: HRTabBenefits, Label: "Benefícios"},
	tabs.Tab{ID: HRTabDocuments, Label: "Documentos"},
)

// HRQuery selects a tab and its optional filters.
type HRQuery struct {
	Tab    string
	Search string
	Status string
}

// TabView is a tabbed page: the selectable tabs, the active one, and its single content block.
type TabView struct {
	Tabs    []tabs.Tab `json:"tabs"`
	Active  string     `json:"active"`
	Content any        `json:"content"`
}

// VacationView is a vacation request with display labels.
type VacationView struct {
	domain.VacationRequest
	StartDateLabel string `json:"start_date_label"`
	EndDateLabel   string `json:"end_date_label"`
	DaysLabel      string `json:"days_label"`
	StatusLabel    string `json:"status_label"`
	Actionable     bool   `json:"actionable"`
}

// VacationCounters count requests per status over the full list.
type VacationCounters struct {
	Approved  int `json:"approved"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Rejected  int `json:"rejected"`
}

// VacationBlock is the vacation tab.
type VacationBlock struct {
	Requests []VacationView   `json:"requests"`
	Counters VacationCounters `json:"counters"`
}

// AttendanceView adds the attendance rate to a summary.
type AttendanceView struct {
	domain.AttendanceSummary
	Rate      float64 `json:"rate"`
	RateLabel string  `json:"rate_label"`
}

// AttendanceBlock is the attendance tab.
type AttendanceBlock struct {
	Rows []AttendanceView `json:"rows"`
}

// TrainingView adds completion progress to a training record.
type TrainingView struct {
	domain.TrainingRecord
	Progress      float64 `json:"progress"`
	ProgressLabel string  `json:"progress_label"`
	StatusLabel   string  `json:"status_label"`
	DueDateLabel  string  `json:"due_date_label"`
}

// TrainingBlock is the training tab.
type TrainingBlock struct {
	Trainings []TrainingView `json:"trainings"`
}

// BenefitView is a benefit card.
type BenefitView struct {
	domain.Benefit
	MonthlyCostLabel string `json:"monthly_cost_label"`
}

// BenefitsBlock is the benefits tab.
type BenefitsBlock struct {
	Benefits         []BenefitView `json:"benefits"`
	TotalMonthlyCost float64       `json:"total_monthly_cost"`
	TotalLabel       string        `json:"total_label"`
}

// DocumentView is a tracked document with display labels.
type DocumentView struct {
	domain.Document
	StatusLabel  string `json:"status_label"`
	DueDateLabel string `json:"due_date_label"`
	Urgent       bool   `json:"urgent"`
}

// DocumentsBlock is the documents tab: summary counts and the documents still outstanding.
type DocumentsBlock struct {
	Summary domain.DocumentSummary `json:"summary"`
	Pending []DocumentView         `json:"pending"`
}

// HRService serves the HR tabs and their placeholder actions.
type HRService struct {
	repo   repository.HRRepository
	events publisher
	logger *zap.Logger
}

// NewHRService builds the service.
func NewHRService(repo repository.HRRepository, dispatcher events.Dispatcher, logger *zap.Logger) *HRService {
	return &HRService{
		repo:   repo,
		events: publisher{dispatcher: dispatcher, logger: logger},
		logger: logger,
	}
}

// Tabs returns the HR tab set.
func (s *HRService) Tabs() []tabs.Tab {
	return hrTabs.Tabs()
}

// View renders exactly the block of the selected tab.
func (s *HRService) View(ctx context.Context, q HRQuery) (*TabView, error) {
	sel := hrTabs.NewSelector()
	if err := sel.Select(q.Tab); err != nil {
		return nil, unknownTab(err, hrTabs)
	}

	content, err := tabs.Render(ctx, sel, map[string]tabs.Block[any]{
		HRTabVacation:   func(ctx context.Context) (any, error) { return s.vacations(ctx, q.Status) },
		HRTabAttendance: func(ctx context.Context) (any, error) { return s.attendance(ctx, q.Search) },
		HRTabTraining:   func(ctx context.Context) (any, error) { return s.trainings(ctx, q.Status) },
		HRTabBenefits:   func(ctx context.Context) (any, error) { return s.benefits(ctx) },
		HRTabDocuments:  func(ctx context.Context) (any, error) { return s.documents(ctx) },
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &TabView{Tabs: sel.Tabs(), Active: sel.Current().ID, Content: content}, nil
}

func (s *HRService) vacations(ctx context.Context, status string) (*VacationBlock, error) {
	all, err := s.repo.ListVacations(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.New[domain.VacationRequest]().
		Equals(status, func(v domain.VacationRequest) string { return string(v.Status) }).
		Apply(all)

	block := &VacationBlock{Requests: make([]VacationView, 0, len(matched))}
	for _, v := range matched {
		block.Requests = append(block.Requests, VacationView{
			VacationRequest: v,
			StartDateLabel:  format.Date(v.StartDate),
			EndDateLabel:    format.Date(v.EndDate),
			DaysLabel:       fmt.Sprintf("%d dias", v.Days),
			StatusLabel:     v.Status.Label(),
			Actionable:      v.Status == domain.VacationPending,
		})
	}
	for _, v := range all {
		switch v.Status {
		case domain.VacationApproved:
			block.Counters.Approved++
		case domain.VacationPending:
			block.Counters.Pending++
		case domain.VacationCompleted:
			block.Counters.Completed++
		case domain.VacationRejected:
			block.Counters.Rejected++
		}
	}
	return block, nil
}

func (s *HRService) attendance(ctx context.Context, search string) (*AttendanceBlock, error) {
	all, err := s.repo.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.New[domain.AttendanceSummary]().
		Text(search, func(a domain.AttendanceSummary) string { return a.Employee }).
		Apply(all)

	block := &AttendanceBlock{Rows: make([]AttendanceView, 0, len(matched))}
	for _, a := range matched {
		rate := format.Percent(float64(a.Present), float64(a.Present+a.Absent))
		block.Rows = append(block.Rows, AttendanceView{
			AttendanceSummary: a,
			Rate:              rate,
			RateLabel:         format.PercentLabel(rate),
		})
	}
	return block, nil
}

func (s *HRService) trainings(ctx context.Context, status string) (*TrainingBlock, error) {
	all, err := s.repo.ListTrainings(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter.New[domain.TrainingRecord]().
		Equals(status, func(t domain.TrainingRecord) string { return string(t.Status) }).
		Apply(all)

	block := &TrainingBlock{Trainings: make([]TrainingView, 0, len(matched))}
	for _, t := range matched {
		progress := format.Percent(float64(t.Completed), float64(t.Employees))
		block.Trainings = append(block.Trainings, TrainingView{
			TrainingRecord: t,
			Progress:       progress,
			ProgressLabel:  format.PercentLabel(progress) + " concluído",
			StatusLabel:    t.Status.Label(),
			DueDateLabel:   format.Date(t.DueDate),
		})
	}
	return block, nil
}

func (s *HRService) benefits(ctx context.Context) (*BenefitsBlock, error) {
	all, err := s.repo.ListBenefits(ctx)
	if err != nil {
		return nil, err
	}
	block := &BenefitsBlock{Benefits: make([]BenefitView, 0, len(all))}
	for _, b := range all {
		block.TotalMonthlyCost += b.MonthlyCost
		block.Benefits = append(block.Benefits, BenefitView{Benefit: b, MonthlyCostLabel: format.Currency(b.MonthlyCost)})
	}
	block.TotalLabel = format.Currency(block.TotalMonthlyCost)
	return block, nil
}

func (s *HRService) documents(ctx context.Context) (*DocumentsBlock, error) {
	all, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.DocumentSummary(ctx)
	if err != nil {
		return nil, err
	}
	outstanding := filter.New[domain.Document]().
		Where(func(d domain.Document) bool { return d.Status != domain.DocumentReceived }).
		Apply(all)

	block := &DocumentsBlock{Summary: summary, Pending: make([]DocumentView, 0, len(outstanding))}
	for _, d := range outstanding {
		block.Pending = append(block.Pending, newDocumentView(d))
	}
	return block, nil
}

// ActOnVacation records an approve or reject request for a pending vacation. The status is not changed.
func (s *HRService) ActOnVacation(ctx context.Context, id string, action events.VacationAction, actor string) (*SubmissionResult, error) {
	if action != events.VacationApprove && action != events.VacationReject {
		return nil, apperrors.NewBadRequest(fmt.Sprintf("ação desconhecida: %s", action))
	}
	vacation, err := s.repo.GetVacation(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "vacation request", id)
	}
	if vacation.Status != domain.VacationPending {
		return nil, apperrors.NewBadRequest("Apenas solicitações pendentes podem ser aprovadas ou rejeitadas")
	}

	event := events.New(events.EventVacationActionRequested, vacation.ID, actor, events.VacationActionPayload{
		Action:   action,
		Employee: vacation.Employee,
		Status:   string(vacation.Status),
	})
	s.events.publish(ctx, event)

	message := "Solicitação de aprovação enviada"
	if action == events.VacationReject {
		message = "Solicitação de rejeição enviada"
	}
	return &SubmissionResult{Message: message, EventID: event.ID}, nil
}

// RequestDocument asks the employee for an outstanding document.
func (s *HRService) RequestDocument(ctx context.Context, id, actor string) (*SubmissionResult, error) {
	document, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "document", id)
	}
	if document.Status == domain.DocumentReceived {
		return nil, apperrors.NewBadRequest("Documento já recebido")
	}

	event := events.New(events.EventDocumentRequested, document.ID, actor, events.DocumentRequestedPayload{
		Employee: document.Employee,
		Document: document.Name,
	})
	s.events.publish(ctx, event)

	return &SubmissionResult{Message: "Solicitação de documento enviada", EventID: event.ID}, nil
}

func newDocumentView(d domain.Document) DocumentView {
	return DocumentView{
		Document:     d,
		StatusLabel:  d.Label(),
		DueDateLabel: format.Date(d.DueDate),
		Urgent:       d.Status == domain.DocumentExpired,
	}
}

func unknownTab(err error, set tabs.Set) error {
	ids := make([]string, 0, len(set.Tabs()))
	for _, tab := range set.Tabs() {
		ids = append(ids, tab.ID)
	}
	return apperrors.NewDomainError("UNKNOWN_TAB", err.Error(), http.StatusBadRequest, map[string]any{"allowed": ids})
}

func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.MapError(err)
}
