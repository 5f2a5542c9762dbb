package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fornolabs/pizza-contest-api/internal/config"
	"github.com/fornolabs/pizza-contest-api/internal/handler"
	"github.com/fornolabs/pizza-contest-api/internal/middleware"
	"github.com/fornolabs/pizza-contest-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	VoteHandler        *handler.VoteHandler
	LeaderboardHandler *handler.LeaderboardHandler
	PizzaHandler       *handler.PizzaHandler
	CompletionHandler  *handler.CompletionHandler
	AuditHandler       *handler.AuditHandler
	SeedHandler        *handler.SeedHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Voter surface
	if deps.VoteHandler != nil {
		votes := api.Group("/votes", jwtMiddleware,
			middleware.RateLimit("votes", cfg.VoteRateLimit, cfg.VoteRateWindow))
		deps.VoteHandler.Register(votes)
	}

	if deps.PizzaHandler != nil {
		voterPizzas := api.Group("/pizzas", jwtMiddleware)
		deps.PizzaHandler.RegisterVoter(voterPizzas)
	}

	if deps.LeaderboardHandler != nil {
		leaderboard := api.Group("/leaderboard", jwtMiddleware)
		deps.LeaderboardHandler.Register(leaderboard)
	}

	// Admin surface
	admin := app.Group("/api/admin", jwtMiddleware, middleware.RequireRole("admin"))

	if deps.PizzaHandler != nil {
		pizzas := admin.Group("/pizzas")
		deps.PizzaHandler.Register(pizzas)

		if deps.CompletionHandler != nil {
			deps.CompletionHandler.Register(pizzas)
		}
	}

	if deps.AuditHandler != nil {
		audit := admin.Group("/audit")
		deps.AuditHandler.Register(audit)
	}

	// Seeding tools are token gated in the service, not by session auth.
	if deps.SeedHandler != nil {
		seed := app.Group("/api/tools/seed")
		deps.SeedHandler.Register(seed)
	}
}
