package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/domain"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Session domain.Session
	User    domain.User
}

// AuthMiddleware validates bearer tokens against live sessions.
type AuthMiddleware struct {
	authenticator *Authenticator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(authenticator *Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return err
	}

	principal, ok := m.authenticator.IsAuthenticated(c.UserContext(), token)
	if !ok {
		return apperrors.NewUnauthorized("invalid or expired session")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// BearerToken extracts the token from the Authorization header. EventSource clients
// cannot set headers, so the access_token query parameter is accepted as a fallback.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if token := c.Query("access_token"); token != "" {
			return token, nil
		}
		return "", apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return parts[1], nil
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
