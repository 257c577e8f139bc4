package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/idealiza/admin-service/internal/api/http/handlers"
	"github.com/idealiza/admin-service/internal/auth"
	"github.com/idealiza/admin-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Employees      *handlers.EmployeesHandler
	HR             *handlers.HRHandler
	Financial      *handlers.FinancialHandler
	Reports        *handlers.ReportsHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	requireAuth := cfg.AuthMiddleware.Handle

	dashboard := app.Group("/dashboard", requireAuth)
	dashboard.Get("", cfg.Dashboard.Get)
	dashboard.Get("/clock", cfg.Dashboard.Clock)

	employees := app.Group("/employees", requireAuth, auth.RequireRole(domain.UserRoleHR, domain.UserRoleSupervisor))
	employees.Get("", cfg.Employees.List)
	employees.Post("", cfg.Employees.Create)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)

	hr := app.Group("/hr", requireAuth, auth.RequireRole(domain.UserRoleHR))
	hr.Get("", cfg.HR.View)
	hr.Post("/vacations/:id/approve", cfg.HR.ApproveVacation)
	hr.Post("/vacations/:id/reject", cfg.HR.RejectVacation)
	hr.Post("/documents/:id/request", cfg.HR.RequestDocument)

	financial := app.Group("/financial", requireAuth, auth.RequireRole(domain.UserRoleFinancial))
	financial.Get("", cfg.Financial.View)

	reports := app.Group("/reports", requireAuth, auth.RequireRole(domain.UserRoleFinancial, domain.UserRoleHR, domain.UserRoleSupervisor))
	reports.Get("", cfg.Reports.Catalog)
	reports.Post("/generate", cfg.Reports.Generate)

	profile := app.Group("/profile", requireAuth)
	profile.Get("", cfg.Profile.Get)
	profile.Put("/name", cfg.Profile.UpdateName)
	profile.Post("/password", cfg.Profile.ChangePassword)
	profile.Get("/documents/:id/download", cfg.Profile.DownloadDocument)
}
