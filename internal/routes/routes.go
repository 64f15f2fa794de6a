package routes

import (
	"time"

	"github.com/fitme95/fitme-backend/internal/config"
	"github.com/fitme95/fitme-backend/internal/handlers"
	"github.com/fitme95/fitme-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	measurementHandler *handlers.MeasurementHandler,
	routineHandler *handlers.RoutineHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/login", authLimiter, authHandler.Login)
	api.Post("/refresh-token", authLimiter, authHandler.Refresh)

	// Everything below requires a valid access token
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/user-info", authHandler.UserInfo)
	protected.Post("/onboarding", profileHandler.Onboarding)

	protected.Post("/measurements/create", measurementHandler.Create)
	protected.Get("/measurements", measurementHandler.List)
	protected.Put("/measurements/update/:id", measurementHandler.Update)
	protected.Delete("/measurements/delete/:id", measurementHandler.Delete)

	protected.Get("/routines", routineHandler.List)
	protected.Post("/routines/create", routineHandler.Create)
	protected.Put("/routines/update/:id", routineHandler.Update)
	protected.Delete("/routines/delete/:id", routineHandler.Delete)
	protected.Post("/routines/tasks/update/:id", routineHandler.UpdateTaskStatus)
}
