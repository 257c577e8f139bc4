package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/service"
)

// FinancialHandler serves the financial tabs.
type FinancialHandler struct {
	service *service.FinancialService
}

// NewFinancialHandler constructs handler.
func NewFinancialHandler(financialService *service.FinancialService) *FinancialHandler {
	return &FinancialHandler{service: financialService}
}

// View GET /financial?tab=.
func (h *FinancialHandler) View(c *fiber.Ctx) error {
	view, err := h.service.View(c.UserContext(), service.FinancialQuery{
		Tab:    c.Query("tab"),
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}
