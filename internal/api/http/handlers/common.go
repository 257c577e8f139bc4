package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/auth"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// actor names the caller in logs and events.
func actor(c *fiber.Ctx) string {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return ""
	}
	return principal.User.Email
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	return nil
}

func accepted(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": data})
}
