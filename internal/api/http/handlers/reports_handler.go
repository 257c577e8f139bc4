package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/service"
)

// ReportsHandler serves the report catalog.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Catalog GET /reports.
func (h *ReportsHandler) Catalog(c *fiber.Ctx) error {
	catalog, err := h.service.Catalog(c.UserContext(), service.ReportQuery{Category: c.Query("category")})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": catalog})
}

// Generate POST /reports/generate.
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	result, err := h.service.Generate(c.UserContext(), req, actor(c))
	if err != nil {
		return err
	}
	return accepted(c, result)
}
