package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/idealiza/admin-service/internal/auth"
	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/domain"
	"github.com/idealiza/admin-service/internal/events"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

const (
	msgAuthFailed      = "Erro na autenticação. Tente novamente."
	msgNameRequired    = "Nome é obrigatório"
	msgSignupMismatch  = "As senhas não coincidem"
	msgSignupSucceeded = "Cadastro realizado com sucesso! Agora você pode fazer login."

	// HomeTarget is where the client navigates after a successful login.
	HomeTarget = "/"
)

// Authenticator is the collaborator that confirms credentials and opens sessions.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Issue(ctx context.Context) (*auth.Grant, error)
	Logout(ctx context.Context, token string) error
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Redirect  string      `json:"redirect"`
	User      domain.User `json:"user"`
}

// SignupInput is the signup form.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService coordinates the login, signup, and logout flows.
type AuthService struct {
	email         string
	password      string
	signupDelay   time.Duration
	authenticator Authenticator
	events        publisher
	logger        *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, authenticator Authenticator, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		email:         cfg.LoginEmail,
		password:      cfg.LoginPassword,
		signupDelay:   cfg.SignupDelay(),
		authenticator: authenticator,
		events:        publisher{dispatcher: dispatcher, logger: logger},
		logger:        logger,
	}
}

// Login checks the submitted pair against the configured one before asking the
// authenticator for a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email != s.email || password != s.password {
		return nil, apperrors.NewDomainError("INVALID_CREDENTIALS", s.mismatchMessage(), http.StatusUnauthorized, nil)
	}

	ok, err := s.authenticator.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("authenticator login failed", zap.Error(err))
		return nil, apperrors.NewAuthFailed(msgAuthFailed, err)
	}
	if !ok {
		return nil, apperrors.NewAuthFailed(msgAuthFailed, nil)
	}

	grant, err := s.authenticator.Issue(ctx)
	if err != nil {
		s.logger.Error("issue session failed", zap.Error(err))
		return nil, apperrors.NewAuthFailed(msgAuthFailed, err)
	}

	s.events.publish(ctx, events.New(events.EventUserLoggedIn, grant.User.ID, grant.User.Email, events.UserLoggedInPayload{
		SessionID: grant.Session.ID,
		ExpiresAt: grant.ExpiresAt,
	}))

	return &LoginResult{
		Token:     grant.AccessToken,
		ExpiresAt: grant.ExpiresAt,
		Redirect:  HomeTarget,
		User:      grant.User,
	}, nil
}

// Signup validates the form, waits the configured delay, and confirms. Nothing is stored.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if in.Password != in.ConfirmPassword {
		return "", apperrors.NewValidationError(msgSignupMismatch, map[string]any{"confirm_password": msgSignupMismatch})
	}
	if strings.TrimSpace(in.Name) == "" {
		return "", apperrors.NewValidationError(msgNameRequired, map[string]any{"name": msgNameRequired})
	}

	if s.signupDelay > 0 {
		timer := time.NewTimer(s.signupDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	s.logger.Info("signup accepted", zap.String("email", in.Email), zap.String("name", strings.TrimSpace(in.Name)))
	return msgSignupSucceeded, nil
}

// Logout revokes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.authenticator.Logout(ctx, token); err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	return nil
}

func (s *AuthService) mismatchMessage() string {
	return fmt.Sprintf("Email ou senha incorretos. Use: %s / %s", s.email, s.password)
}
