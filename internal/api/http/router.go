package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-briefing/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Briefing *handlers.BriefingHandler
	Roster   *handlers.RosterHandler
	Metrics  *handlers.MetricsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Get)
	}

	rosterGroup := app.Group("/roster")
	rosterGroup.Get("/dates", cfg.Briefing.Dates)
	if cfg.Roster != nil {
		rosterGroup.Post("/import", cfg.Roster.Import)
		rosterGroup.Get("/days/:date", cfg.Roster.Day)
	}

	app.Get("/assignments/:date", cfg.Briefing.Assignments)
	app.Get("/briefings/:date", cfg.Briefing.Briefing)
}
