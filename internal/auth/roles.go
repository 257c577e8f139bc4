package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/domain"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// RequireRole ensures the principal has one of the allowed roles. Admins always pass.
func RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed)+1)
	allowedSet[domain.UserRoleAdmin] = struct{}{}
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
