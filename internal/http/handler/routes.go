package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"licadmin/internal/auth"
	"licadmin/internal/http/middleware"
	"licadmin/internal/service"
)

// Services bundles the use cases the HTTP layer exposes.
type Services struct {
	Users          service.UserService
	Licenses       service.LicenseService
	Devices        service.DeviceService
	LicenseHistory service.LicenseHistoryService
	AuditExport    service.AuditExportService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; parameter extraction and status mapping only.
// Everything under /settings requires a bearer token with the admin role.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenManager, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/login", Login(svcs.Users))

	settings := app.Group("/settings", middleware.Protected(tokens), middleware.AdminOnly())

	settings.Post("/licenseHistory", CreateLicenseHistory(svcs.LicenseHistory))
	settings.Get("/licenseHistory", ListLicenseHistory(svcs.LicenseHistory))
	settings.Put("/licenseHistory", UpdateLicenseHistory(svcs.LicenseHistory))
	settings.Delete("/licenseHistory", DeleteLicenseHistory(svcs.LicenseHistory))
	settings.Post("/licenseHistory/export", ExportLicenseHistory(svcs.AuditExport))

	settings.Post("/license", CreateLicense(svcs.Licenses))
	settings.Get("/license", ListLicenses(svcs.Licenses))
	settings.Put("/license", UpdateLicense(svcs.Licenses))
	settings.Delete("/license", DeleteLicense(svcs.Licenses))

	settings.Post("/device", RegisterDevice(svcs.Devices))
	settings.Get("/device", ListDevices(svcs.Devices))
	settings.Put("/device", UpdateDevice(svcs.Devices))
	settings.Delete("/device", DeleteDevice(svcs.Devices))

	settings.Post("/user", CreateUser(svcs.Users))
	settings.Get("/user", ListUsers(svcs.Users))
	settings.Put("/user", UpdateUser(svcs.Users))
	settings.Delete("/user", DeleteUser(svcs.Users))
}
