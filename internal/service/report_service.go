package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/filter"
	"github.com/idealiza/admin-service/internal/format"
	"github.com/idealiza/admin-service/internal/repository"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

const (
	msgSelectReport    = "Selecione um tipo de relatório"
	msgReportQueued    = "Relatório sendo gerado! Você receberá uma notificação quando estiver pronto."
	msgInvalidInterval = "A data inicial deve ser anterior à data final"
	msgInvalidPeriod   = "Período inválido"
)

var reportMessages = apperrors.FieldMessages{
	"start_date": "Data inicial inválida",
	"end_date":   "Data final inválida",
}

// ReportQuery filters the catalog.
type ReportQuery struct {
	Category string
}

// RecentReportView is a generated report with its display date.
type RecentReportView struct {
	domain.RecentReport
	GeneratedLabel string `json:"generated_label"`
}

// ReportCatalog lists what can be generated and the options of the generation form.
type ReportCatalog struct {
	Types       []domain.ReportType `json:"types"`
	Categories  []string            `json:"categories"`
	Recent      []RecentReportView  `json:"recent"`
	Departments []string            `json:"departments"`
	Clients     []string            `json:"clients"`
}

// ReportService serves the report catalog and accepts generation requests.
type ReportService struct {
	reports  repository.ReportRepository
	finance  repository.FinanceRepository
	validate *validator.Validate
	events   publisher
	logger   *zap.Logger
}

// NewReportService builds the service.
func NewReportService(reports repository.ReportRepository, finance repository.FinanceRepository, validate *validator.Validate, dispatcher events.Dispatcher, logger *zap.Logger) *ReportService {
	return &ReportService{
		reports:  reports,
		finance:  finance,
		validate: validate,
		events:   publisher{dispatcher: dispatcher, logger: logger},
		logger:   logger,
	}
}

// Catalog returns the report types, optionally narrowed to one category.
func (s *ReportService) Catalog(ctx context.Context, q ReportQuery) (*ReportCatalog, error) {
	types, err := s.reports.ListReportTypes(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	recent, err := s.reports.ListRecentReports(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	departments, err := s.finance.ListDepartmentPayroll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	clients, err := s.finance.ListClientCosts(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	catalog := &ReportCatalog{
		Types: filter.New[domain.ReportType]().
			Equals(q.Category, reportCategory).
			Apply(types),
		Categories:  filter.Distinct(types, reportCategory),
		Recent:      make([]RecentReportView, 0, len(recent)),
		Departments: filter.Distinct(departments, func(d domain.DepartmentPayroll) string { return d.Department }),
		Clients:     filter.Distinct(clients, func(c domain.ClientCost) string { return c.Client }),
	}
	for _, r := range recent {
		catalog.Recent = append(catalog.Recent, RecentReportView{RecentReport: r, GeneratedLabel: format.Date(r.Generated)})
	}
	return catalog, nil
}

// Generate accepts a report request. No file is produced; the request is published for notification.
func (s *ReportService) Generate(ctx context.Context, req dto.GenerateReportRequest, actor string) (*SubmissionResult, error) {
	reportID := strings.TrimSpace(req.Type)
	if reportID == "" {
		return nil, apperrors.NewValidationError(msgSelectReport, map[string]any{"type": msgSelectReport})
	}
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.FromValidationError(err, msgInvalidPeriod, reportMessages)
	}
	if err := checkInterval(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	types, err := s.reports.ListReportTypes(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	var selected *domain.ReportType
	for i := range types {
		if types[i].ID == reportID {
			selected = &types[i]
			break
		}
	}
	if selected == nil {
		return nil, apperrors.NewNotFound("report type", map[string]any{"type": reportID})
	}

	event := events.New(events.EventReportRequested, selected.ID, actor, events.ReportRequestedPayload{
		ReportType: selected.ID,
		Title:      selected.Title,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Department: req.Department,
		Client:     req.Client,
	})
	s.events.publish(ctx, event)

	return &SubmissionResult{Message: msgReportQueued, EventID: event.ID}, nil
}

// checkInterval rejects a start date after the end date. Either bound may be open.
func checkInterval(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	from, err := time.Parse(format.DateLayout, start)
	if err != nil {
		return apperrors.NewValidationError(msgInvalidPeriod, map[string]any{"start_date": reportMessages["start_date"]})
	}
	to, err := time.Parse(format.DateLayout, end)
	if err != nil {
		return apperrors.NewValidationError(msgInvalidPeriod, map[string]any{"end_date": reportMessages["end_date"]})
	}
	if from.After(to) {
		return apperrors.NewValidationError(msgInvalidInterval, map[string]any{"end_date": msgInvalidInterval})
	}
	return nil
}

func reportCategory(r domain.ReportType) string { return r.Category }
