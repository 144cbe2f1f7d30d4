// path: routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"civicfix/controllers"
)

// Deps bundles the constructed controllers and auth middleware.
type Deps struct {
	Auth      *controllers.AuthController
	Reports   *controllers.ReportController
	Analytics *controllers.AnalyticsController
	Users     *controllers.UserController

	RequireAuth  fiber.Handler
	OptionalAuth fiber.Handler
}

// Register attaches all API endpoints to the app under /api.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	api.Post("/auth/signup", d.Auth.Signup)
	api.Post("/auth/login", d.Auth.Login)
	api.Get("/auth/me", d.RequireAuth, d.Auth.Me)

	api.Post("/reports", d.OptionalAuth, d.Reports.Create)
	api.Get("/reports", d.Reports.List)
	api.Get("/reports/:id", d.Reports.Get)
	api.Put("/reports/:id/status", d.RequireAuth, d.Reports.UpdateStatus)
	api.Put("/reports/:id/assign", d.RequireAuth, d.Reports.Assign)

	api.Post("/reports/:id/comments", d.RequireAuth, d.Reports.AddComment)
	api.Get("/reports/:id/comments", d.Reports.ListComments)

	api.Get("/analytics", d.RequireAuth, d.Analytics.Summary)
	api.Get("/users", d.RequireAuth, d.Users.List)
}
