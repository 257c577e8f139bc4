package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/observability"
)

// NotificationService turns domain events into log lines and notification stubs.
type NotificationService struct {
	logger  *zap.Logger
	metrics *observability.Metrics
	cfg     config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, metrics *observability.Metrics, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}
}

// Deliver handles one event.
func (n *NotificationService) Deliver(ctx context.Context, event events.Event) error {
	n.metrics.RecordEvent(string(event.Type))

	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("subject_id", event.SubjectID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload),
	}

	switch event.Type {
	case events.EventEmployeeSubmitted:
		n.logger.Info("EmployeeSubmitted", fields...)
	case events.EventVacationActionRequested:
		n.logger.Info("VacationActionRequested", fields...)
		n.sendEmailNotificationStub(ctx, event)
	case events.EventDocumentRequested:
		n.logger.Info("DocumentRequested", fields...)
		n.sendEmailNotificationStub(ctx, event)
	case events.EventReportRequested:
		n.logger.Info("ReportRequested", fields...)
		n.sendWebhookNotificationStub(ctx, event)
	case events.EventUserLoggedIn:
		n.logger.Info("UserLoggedIn", fields...)
	case events.EventProfileUpdated:
		n.logger.Info("ProfileUpdated", fields...)
	default:
		n.logger.Warn("unhandled event", append(fields, zap.String("type", string(event.Type)))...)
	}
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
