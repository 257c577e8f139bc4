package domain

// VacationStatus tracks a leave request. Transitions are not modelled.
type VacationStatus string

const (
	VacationPending   VacationStatus = "pending"
	VacationApproved  VacationStatus = "approved"
	VacationRejected  VacationStatus = "rejected"
	VacationCompleted VacationStatus = "completed"
)

// Label is the badge text for s.
func (s VacationStatus) Label() string {
	switch s {
	case VacationPending:
		return "Pendente"
	case VacationApproved:
		return "Aprovado"
	case VacationRejected:
		return "Rejeitado"
	case VacationCompleted:
		return "Concluído"
	default:
		return string(s)
	}
}

// VacationType distinguishes regular vacation from other leave.
type VacationType string

const (
	VacationTypeVacation VacationType = "ferias"
	VacationTypeLeave    VacationType = "licenca"
)

// VacationRequest is a leave period requested by an employee.
type VacationRequest struct {
	ID           string         `json:"id"`
	EmployeeID   string         `json:"employee_id"`
	Employee     string         `json:"employee"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
	Days         int            `json:"days"`
	Status       VacationStatus `json:"status"`
	Type         VacationType   `json:"type"`
	Observations string         `json:"observations,omitempty"`
}

// AttendanceSummary aggregates one employee's month.
type AttendanceSummary struct {
	EmployeeID string `json:"employee_id"`
	Employee   string `json:"employee"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Late       int    `json:"late"`
	Overtime   int    `json:"overtime"`
}

// TrainingStatus is the lifecycle of a training programme.
type TrainingStatus string

const (
	TrainingActive    TrainingStatus = "active"
	TrainingCompleted TrainingStatus = "completed"
	TrainingCancelled TrainingStatus = "cancelled"
)

// Label is the badge text for s.
func (s TrainingStatus) Label() string {
	switch s {
	case TrainingActive:
		return "Ativo"
	case TrainingCompleted:
		return "Concluído"
	case TrainingCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// TrainingRecord counts enrolled and finished employees. Completed <= Employees is assumed, not checked.
type TrainingRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Employees   int            `json:"employees"`
	Completed   int            `json:"completed"`
	DueDate     string         `json:"due_date"`
	Status      TrainingStatus `json:"status"`
	Category    string         `json:"category,omitempty"`
}

// BenefitType classifies benefits.
type BenefitType string

const (
	BenefitTransport BenefitType = "transport"
	BenefitMeal      BenefitType = "meal"
	BenefitHealth    BenefitType = "health"
	BenefitLife      BenefitType = "life"
	BenefitOther     BenefitType = "other"
)

// Benefit summarizes adoption and cost of one benefit.
type Benefit struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            BenefitType `json:"type"`
	ActiveEmployees int         `json:"active_employees"`
	Enrolled        int         `json:"enrolled"`
	MonthlyCost     float64     `json:"monthly_cost"`
	Mandatory       bool        `json:"mandatory"`
}

// DocumentStatus tracks paperwork collection.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentReceived DocumentStatus = "received"
	DocumentExpired  DocumentStatus = "expired"
)

// DocumentType enumerates required paperwork.
type DocumentType string

const (
	DocumentRG          DocumentType = "rg"
	DocumentCPF         DocumentType = "cpf"
	DocumentCTPS        DocumentType = "ctps"
	DocumentTitulo      DocumentType = "titulo"
	DocumentASO         DocumentType = "aso"
	DocumentComprovante DocumentType = "comprovante"
	DocumentOther       DocumentType = "other"
)

// Document is a piece of employee paperwork. FilePath is never populated.
type Document struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employee_id"`
	Employee   string         `json:"employee"`
	Type       DocumentType   `json:"type"`
	Name       string         `json:"name"`
	Status     DocumentStatus `json:"status"`
	DueDate    string         `json:"due_date,omitempty"`
	UploadDate string         `json:"upload_date,omitempty"`
	FilePath   string         `json:"-"`
}

// Label is the badge text: a pending document with a due date is shown as expiring.
func (d Document) Label() string {
	switch d.Status {
	case DocumentPending:
		if d.DueDate != "" {
			return "Vencendo"
		}
		return "Pendente"
	case DocumentExpired:
		return "Vencido"
	case DocumentReceived:
		return "Recebido"
	default:
		return string(d.Status)
	}
}

// DocumentSummary holds the headcount per documentation state.
type DocumentSummary struct {
	Complete int `json:"complete"`
	Pending  int `json:"pending"`
	Expired  int `json:"expired"`
}
