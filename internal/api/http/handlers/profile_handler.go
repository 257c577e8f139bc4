package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/service"
)

// ProfileHandler serves the profile page.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: profileService}
}

// Get GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// UpdateName PUT /profile/name.
func (h *ProfileHandler) UpdateName(c *fiber.Ctx) error {
	var req dto.UpdateNameRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, name, err := h.service.UpdateName(c.UserContext(), req.Name, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": resp.Message, "name": name}})
}

// ChangePassword POST /profile/password.
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	resp, err := h.service.ChangePassword(c.UserContext(), req, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resp})
}

// DownloadDocument GET /profile/documents/:id/download.
func (h *ProfileHandler) DownloadDocument(c *fiber.Ctx) error {
	result, err := h.service.DownloadDocument(c.UserContext(), c.Params("id"), actor(c))
	if err != nil {
		return err
	}
	return accepted(c, result)
}
