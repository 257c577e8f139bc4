package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/domain"
)

// Grant is the result of a successful session issue.
type Grant struct {
	AccessToken string
	ExpiresAt   time.Time
	Session     domain.Session
	User        domain.User
}

// Authenticator checks the configured credential pair and manages sessions.
type Authenticator struct {
	email        string
	passwordHash string
	user         domain.User
	tokens       *TokenManager
	sessions     SessionStore
	now          func() time.Time
}

// NewAuthenticator hashes the configured password once at startup.
func NewAuthenticator(cfg config.AuthConfig, sessions SessionStore) (*Authenticator, error) {
	hash, err := HashPassword(cfg.LoginPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash login password: %w", err)
	}
	if sessions == nil {
		sessions = NewMemorySessionStore()
	}
	return &Authenticator{
		email:        cfg.LoginEmail,
		passwordHash: hash,
		user: domain.User{
			ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+cfg.LoginEmail)).String(),
			Name:  cfg.LoginName,
			Email: cfg.LoginEmail,
			Role:  domain.UserRoleAdmin,
		},
		tokens:   NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		sessions: sessions,
		now:      time.Now,
	}, nil
}

// Login reports whether the pair matches the configured account.
func (a *Authenticator) Login(ctx context.Context, email, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if email != a.email {
		return false, nil
	}
	return PasswordMatches(a.passwordHash, password)
}

// Issue opens a session for the configured account and signs its token.
func (a *Authenticator) Issue(ctx context.Context) (*Grant, error) {
	issuedAt := a.now()
	sessionID := uuid.NewString()

	token, expiresAt, err := a.tokens.GenerateToken(a.user.ID, a.user.Email, sessionID, issuedAt)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	session := domain.Session{
		ID:        sessionID,
		UserID:    a.user.ID,
		Email:     a.user.Email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
	if err := a.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &Grant{AccessToken: token, ExpiresAt: expiresAt, Session: session, User: a.user}, nil
}

// IsAuthenticated resolves a bearer token to its principal. The token must be valid and its session live.
func (a *Authenticator) IsAuthenticated(ctx context.Context, token string) (*Principal, bool) {
	claims, err := a.tokens.ParseToken(token)
	if err != nil {
		return nil, false
	}
	session, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, false
	}
	return &Principal{Session: *session, User: a.user}, true
}

// Logout revokes the session behind token. Unknown sessions are not an error.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	claims, err := a.tokens.ParseToken(token)
	if err != nil {
		return errors.New("invalid token")
	}
	return a.sessions.Delete(ctx, claims.SessionID)
}

// User returns the configured account.
func (a *Authenticator) User() domain.User {
	return a.user
}
