package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/domain"
)

func protectedApp(a *Authenticator, roles ...domain.UserRole) *fiber.App {
	app := fiber.New()
	mw := NewAuthMiddleware(a)
	app.Get("/private", mw.Handle, RequireRole(roles...), func(c *fiber.Ctx) error {
		p, _ := PrincipalFromContext(c)
		return c.SendString(p.User.Email)
	})
	return app
}

func TestMiddlewareRequiresBearer(t *testing.T) {
	app := protectedApp(newTestAuthenticator(t))

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode == fiber.StatusOK {
		t.Fatalf("expected rejection without token")
	}
}

func TestMiddlewareAcceptsHeaderAndQueryToken(t *testing.T) {
	a := newTestAuthenticator(t)
	grant, err := a.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	app := protectedApp(a, domain.UserRoleHR)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+grant.AccessToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("header token: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("header token: expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/private?access_token="+grant.AccessToken, nil))
	if err != nil {
		t.Fatalf("query token: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("query token: expected 200, got %d", resp.StatusCode)
	}
}
