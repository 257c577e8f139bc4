package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/format"
	"github.com/idealiza/admin-service/internal/repository"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

const (
	minPasswordLength = 6

	msgProfilePasswordMismatch = "As senhas não coincidem!"
	msgProfilePasswordShort    = "A senha deve ter pelo menos 6 caracteres!"
	msgProfilePasswordChanged  = "Senha alterada com sucesso!"
	msgProfileNameSaved        = "Nome atualizado"
)

// ProfileView is the signed-in user's profile page.
type ProfileView struct {
	domain.Profile
	JoinDateLabel string                   `json:"join_date_label"`
	Documents     []domain.ProfileDocument `json:"documents"`
}

// ProfileService serves the profile page. Every change is logged and published, never stored.
type ProfileService struct {
	repo   repository.ProfileRepository
	events publisher
	logger *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(repo repository.ProfileRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, events: publisher{dispatcher: dispatcher, logger: logger}, logger: logger}
}

// Get returns the profile and its documents.
func (s *ProfileService) Get(ctx context.Context) (*ProfileView, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	documents, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &ProfileView{
		Profile:       profile,
		JoinDateLabel: format.Date(profile.JoinDate),
		Documents:     documents,
	}, nil
}

// UpdateName validates and echoes the new name.
func (s *ProfileService) UpdateName(ctx context.Context, name, actor string) (*dto.MessageResponse, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", apperrors.NewValidationError(msgNameRequired, map[string]any{"name": msgNameRequired})
	}

	s.logger.Info("profile name updated", zap.String("name", name), zap.String("actor", actor))
	s.events.publish(ctx, events.New(events.EventProfileUpdated, "", actor, events.ProfileUpdatedPayload{Field: "name", Value: name}))
	return &dto.MessageResponse{Message: msgProfileNameSaved}, name, nil
}

// ChangePassword checks the confirmation and minimum length.
func (s *ProfileService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, actor string) (*dto.MessageResponse, error) {
	if req.NewPassword != req.ConfirmPassword {
		return nil, apperrors.NewValidationError(msgProfilePasswordMismatch, map[string]any{"confirm_password": msgProfilePasswordMismatch})
	}
	if len([]rune(req.NewPassword)) < minPasswordLength {
		return nil, apperrors.NewValidationError(msgProfilePasswordShort, map[string]any{"new_password": msgProfilePasswordShort})
	}

	s.logger.Info("profile password changed", zap.String("actor", actor))
	s.events.publish(ctx, events.New(events.EventProfileUpdated, "", actor, events.ProfileUpdatedPayload{Field: "password"}))
	return &dto.MessageResponse{Message: msgProfilePasswordChanged}, nil
}

// DownloadDocument records a download request for a profile document.
func (s *ProfileService) DownloadDocument(ctx context.Context, id, actor string) (*SubmissionResult, error) {
	document, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "profile document", id)
	}

	s.logger.Info("profile document download requested", zap.String("document", document.Name), zap.String("actor", actor))
	event := events.New(events.EventDocumentRequested, document.ID, actor, events.DocumentRequestedPayload{
		Document: document.Name,
		Download: true,
	})
	s.events.publish(ctx, event)
	return &SubmissionResult{Message: "Baixando documento: " + document.Name, EventID: event.ID}, nil
}
