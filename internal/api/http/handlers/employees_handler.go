package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/api/dto"
	"github.com/idealiza/admin-service/internal/service"
)

// EmployeesHandler serves the employee roster.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext(), service.EmployeeQuery{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": list})
}

// Get GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	employee, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employee})
}

// Create POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, "")
}

// Update PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	return h.submit(c, c.Params("id"))
}

func (h *EmployeesHandler) submit(c *fiber.Ctx, id string) error {
	var req dto.EmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	result, err := h.service.Submit(c.UserContext(), id, req, actor(c))
	if err != nil {
		return err
	}
	return accepted(c, result)
}
