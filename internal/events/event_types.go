package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeSubmitted       EventType = "employee_submitted"
	EventVacationActionRequested EventType = "vacation_action_requested"
	EventDocumentRequested       EventType = "document_requested"
	EventReportRequested         EventType = "report_requested"
	EventUserLoggedIn            EventType = "user_logged_in"
	EventProfileUpdated          EventType = "profile_updated"
)

// AllTypes lists every event type in declaration order.
func AllTypes() []EventType {
	return []EventType{
		EventEmployeeSubmitted,
		EventVacationActionRequested,
		EventDocumentRequested,
		EventReportRequested,
		EventUserLoggedIn,
		EventProfileUpdated,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id,omitempty"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subjectID, actor string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// EmployeeSubmittedPayload carries a validated employee form. ID is empty for new records.
type EmployeeSubmittedPayload struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Client     string  `json:"client"`
	Salary     float64 `json:"salary"`
}

// VacationAction is the requested transition on a vacation request.
type VacationAction string

const (
	VacationApprove VacationAction = "approve"
	VacationReject  VacationAction = "reject"
)

// VacationActionPayload payload.
type VacationActionPayload struct {
	Action   VacationAction `json:"action"`
	Employee string         `json:"employee"`
	Status   string         `json:"status"`
}

// DocumentRequestedPayload payload.
type DocumentRequestedPayload struct {
	Employee string `json:"employee"`
	Document string `json:"document"`
	Download bool   `json:"download"`
}

// ReportRequestedPayload payload.
type ReportRequestedPayload struct {
	ReportType string `json:"report_type"`
	Title      string `json:"title"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	Department string `json:"department,omitempty"`
	Client     string `json:"client,omitempty"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ProfileUpdatedPayload payload. Field names what changed; the new value is never carried for passwords.
type ProfileUpdatedPayload struct {
	Field string `json:"field"`
	Value string `json:"value,omitempty"`
}
