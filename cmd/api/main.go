package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/idealiza/admin-service/internal/api/http"
	"github.com/idealiza/admin-service/internal/api/http/handlers"
	"github.com/idealiza/admin-service/internal/auth"
	"github.com/idealiza/admin-service/internal/config"
	"github.com/idealiza/admin-service/internal/events"
	"github.com/idealiza/admin-service/internal/observability"
	"github.com/idealiza/admin-service/internal/persistence"
	"github.com/idealiza/admin-service/internal/repository"
	"github.com/idealiza/admin-service/internal/service"
	"github.com/idealiza/admin-service/internal/worker"
	apperrors "github.com/idealiza/admin-service/pkg/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	store := repository.NewMemoryStore()
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		seeded, err := repository.SeedPostgres(ctx, pg.PoolHandle())
		if err != nil {
			logger.Fatal("failed to seed postgres", zap.Error(err))
		}
		logger.Info("postgres seeded", zap.Int("statements", seeded))
		store = repository.NewPostgresStore(pg.PoolHandle())
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	sessions := auth.NewMemorySessionStore()
	if redis.Enabled() {
		sessions = auth.NewRedisSessionStore(redis.Client, cfg.Redis.KeyPrefix)
	}

	authenticator, err := auth.NewAuthenticator(cfg.Auth, sessions)
	if err != nil {
		logger.Fatal("failed to init authenticator", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notifications := service.NewNotificationService(logger, metrics, cfg.Notification)
	notificationWorker := worker.NewNotificationWorker(notifications, logger, 0)
	notificationWorker.Subscribe(dispatcher)
	notificationWorker.Start(ctx)

	authService := service.NewAuthService(cfg.Auth, authenticator, dispatcher, logger)
	dashboardService := service.NewDashboardService(store.Dashboard, cfg.Clock)
	validate := apperrors.NewValidator()
	employeeService := service.NewEmployeeService(store.Employees, validate, dispatcher, logger)
	hrService := service.NewHRService(store.HR, dispatcher, logger)
	financialService := service.NewFinancialService(store.Finance, logger)
	reportService := service.NewReportService(store.Reports, store.Finance, validate, dispatcher, logger)
	profileService := service.NewProfileService(store.Profile, dispatcher, logger)

	streams, stopStreams := context.WithCancel(ctx)
	defer stopStreams()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(streams, dashboardService, logger),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		HR:             handlers.NewHRHandler(hrService),
		Financial:      handlers.NewFinancialHandler(financialService),
		Reports:        handlers.NewReportsHandler(reportService),
		Profile:        handlers.NewProfileHandler(profileService),
		AuthMiddleware: auth.NewAuthMiddleware(authenticator),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	stopStreams()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
	notificationWorker.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
