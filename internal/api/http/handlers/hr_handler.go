package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/service"
)

// HRHandler serves the HR tabs.
type HRHandler struct {
	service *service.HRService
}

// NewHRHandler constructs handler.
func NewHRHandler(hrService *service.HRService) *HRHandler {
	return &HRHandler{service: hrService}
}

// View GET /hr?tab=.
func (h *HRHandler) View(c *fiber.Ctx) error {
	view, err := h.service.View(c.UserContext(), service.HRQuery{
		Tab:    c.Query("tab"),
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// ApproveVacation POST /hr/vacations/:id/approve.
func (h *HRHandler) ApproveVacation(c *fiber.Ctx) error {
	return h.vacationAction(c, events.VacationApprove)
}

// RejectVacation POST /hr/vacations/:id/reject.
func (h *HRHandler) RejectVacation(c *fiber.Ctx) error {
	return h.vacationAction(c, events.VacationReject)
}

func (h *HRHandler) vacationAction(c *fiber.Ctx, action events.VacationAction) error {
	result, err := h.service.ActOnVacation(c.UserContext(), c.Params("id"), action, actor(c))
	if err != nil {
		return err
	}
	return accepted(c, result)
}

// RequestDocument POST /hr/documents/:id/request.
func (h *HRHandler) RequestDocument(c *fiber.Ctx) error {
	result, err := h.service.RequestDocument(c.UserContext(), c.Params("id"), actor(c))
	if err != nil {
		return err
	}
	return accepted(c, result)
}
