package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/auth"
	"github.com/idealiza/admin-service/internal/service"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

// AuthHandler exposes login, signup, and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": result})
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	message, err := h.auth.Signup(c.UserContext(), service.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MessageResponse{Message: message}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"user":       principal.User,
		"expires_at": principal.Session.ExpiresAt,
	}})
}
