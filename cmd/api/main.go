package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"licadmin/docs"
	"licadmin/internal/auth"
	"licadmin/internal/config"
	"licadmin/internal/database"
	"licadmin/internal/database/migration"
	handlers "licadmin/internal/http/handler"
	"licadmin/internal/http/middleware"
	licotel "licadmin/internal/otel"
	"licadmin/internal/repository/postgres"
	"licadmin/internal/service"
	"licadmin/internal/storage"
)

// @title License Admin API
// @version 1.0
// @description Administrative backend for licenses, devices, and users.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing first so everything below is instrumented
	shutdownTracing, err := licotel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := migration.SeedAdmin(ctx, db, time.UTC, cfg.Admin); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	// Object storage holds audit-trail export artifacts
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token manager: %v", err)
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	licenseRepo := postgres.NewLicensePostgres(db)
	deviceRepo := postgres.NewDevicePostgres(db)
	historyRepo := postgres.NewLicenseHistoryPostgres(db)

	svcs := handlers.Services{
		Users:          service.NewUserService(userRepo, tokens),
		Licenses:       service.NewLicenseService(licenseRepo, userRepo),
		Devices:        service.NewDeviceService(deviceRepo, userRepo),
		LicenseHistory: service.NewLicenseHistoryService(historyRepo),
		AuditExport:    service.NewAuditExportService(objStore, historyRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, tokens, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
