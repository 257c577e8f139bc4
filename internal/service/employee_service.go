package service

import (
	"context"

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
	// EmployeesTarget is where the client navigates after submitting the employee form.
	EmployeesTarget = "/funcionarios"

	msgNoEmployees      = "Nenhum funcionário encontrado"
	msgEmployeeAccepted = "Dados do funcionário recebidos"
	msgInvalidEmployee  = "Dados do funcionário inválidos"
)

var employeeMessages = apperrors.FieldMessages{
	"name":                    "Nome é obrigatório",
	"email":                   "Email é obrigatório",
	"cpf":                     "CPF é obrigatório",
	"position":                "Cargo é obrigatório",
	"department":              "Departamento é obrigatório",
	"admission_date.required": "Data de admissão é obrigatória",
	"admission_date.datetime": "Data de admissão inválida",
	"birth_date":              "Data de nascimento inválida",
	"contract_type":           "Tipo de contrato inválido",
	"salary":                  "Salário deve ser maior que zero",
	"client":                  "Cliente é obrigatório",
}

// EmployeeQuery carries the list filters. Empty values match everything.
type EmployeeQuery struct {
	Search     string
	Status     string
	Department string
}

// EmployeeView is an employee with its display labels.
type EmployeeView struct {
	domain.Employee
	StatusLabel        string `json:"status_label"`
	SalaryLabel        string `json:"salary_label"`
	AdmissionDateLabel string `json:"admission_date_label"`
}

// EmployeeCounters summarize the full roster regardless of filters.
type EmployeeCounters struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Vacation int `json:"vacation"`
	Inactive int `json:"inactive"`
}

// EmployeeList is the filtered roster.
type EmployeeList struct {
	Employees    []EmployeeView   `json:"employees"`
	Matched      int              `json:"matched"`
	Counters     EmployeeCounters `json:"counters"`
	Departments  []string         `json:"departments"`
	EmptyMessage string           `json:"empty_message,omitempty"`
}

// SubmissionResult acknowledges a placeholder write.
type SubmissionResult struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	EventID  string `json:"event_id"`
}

// EmployeeService serves the employee roster.
type EmployeeService struct {
	repo     repository.EmployeeRepository
	validate *validator.Validate
	events   publisher
	logger   *zap.Logger
}

// NewEmployeeService builds the service.
func NewEmployeeService(repo repository.EmployeeRepository, validate *validator.Validate, dispatcher events.Dispatcher, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		validate: validate,
		events:   publisher{dispatcher: dispatcher, logger: logger},
		logger:   logger,
	}
}

// List filters the roster by free text over name, email, and CPF plus status and department.
func (s *EmployeeService) List(ctx context.Context, q EmployeeQuery) (*EmployeeList, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	matched := filter.New[domain.Employee]().
		Text(q.Search, employeeName, employeeEmail, employeeCPF).
		Equals(q.Status, employeeStatus).
		Equals(q.Department, employeeDepartment).
		Apply(all)

	views := make([]EmployeeView, 0, len(matched))
	for _, e := range matched {
		views = append(views, newEmployeeView(e))
	}

	list := &EmployeeList{
		Employees:   views,
		Matched:     len(views),
		Counters:    countEmployees(all),
		Departments: filter.Distinct(all, employeeDepartment),
	}
	if len(views) == 0 {
		list.EmptyMessage = msgNoEmployees
	}
	return list, nil
}

// Get returns one employee.
func (s *EmployeeService) Get(ctx context.Context, id string) (*EmployeeView, error) {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "employee", id)
	}
	view := newEmployeeView(*employee)
	return &view, nil
}

// Submit validates a create (id empty) or edit form and publishes it. The roster is not modified.
func (s *EmployeeService) Submit(ctx context.Context, id string, req dto.EmployeeRequest, actor string) (*SubmissionResult, error) {
	req.Normalize()
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.FromValidationError(err, msgInvalidEmployee, employeeMessages)
	}

	if id != "" {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
	}

	event := events.New(events.EventEmployeeSubmitted, id, actor, events.EmployeeSubmittedPayload{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Client:     req.Client,
		Salary:     req.Salary,
	})
	s.events.publish(ctx, event)

	return &SubmissionResult{Message: msgEmployeeAccepted, Redirect: EmployeesTarget, EventID: event.ID}, nil
}

func newEmployeeView(e domain.Employee) EmployeeView {
	return EmployeeView{
		Employee:           e,
		StatusLabel:        e.Status.Label(),
		SalaryLabel:        format.Currency(e.Salary),
		AdmissionDateLabel: format.Date(e.AdmissionDate),
	}
}

func countEmployees(all []domain.Employee) EmployeeCounters {
	return EmployeeCounters{
		Total:    len(all),
		Active:   filter.Count(all, hasEmployeeStatus(domain.EmployeeStatusActive)),
		Vacation: filter.Count(all, hasEmployeeStatus(domain.EmployeeStatusVacation)),
		Inactive: filter.Count(all, hasEmployeeStatus(domain.EmployeeStatusInactive)),
	}
}

func hasEmployeeStatus(status domain.EmployeeStatus) filter.Predicate[domain.Employee] {
	return func(e domain.Employee) bool { return e.Status == status }
}

func employeeName(e domain.Employee) string       { return e.Name }
func employeeEmail(e domain.Employee) string      { return e.Email }
func employeeCPF(e domain.Employee) string        { return e.CPF }
func employeeStatus(e domain.Employee) string     { return string(e.Status) }
func employeeDepartment(e domain.Employee) string { return e.Department }
