package routes

import (
	"time"

	"github.com/artatlas/atlas-api/internal/config"
	"github.com/artatlas/atlas-api/internal/handlers"
	"github.com/artatlas/atlas-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	categoryHandler *handlers.CategoryHandler,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	dashboardHandler *handlers.DashboardHandler,
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

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Browsing is public; an optional token lets owners and admins see their
	// pending entries and exact coordinates.
	api.Get("/entries", middleware.OptionalJWT(cfg), entryHandler.List)
	api.Get("/entries/:id", middleware.OptionalJWT(cfg), entryHandler.Get)
	api.Post("/entries", middleware.JWTProtected(cfg), entryHandler.Create)
	api.Put("/entries/:id", middleware.JWTProtected(cfg), entryHandler.Update)
	api.Delete("/entries/:id", middleware.JWTProtected(cfg), entryHandler.Delete)

	api.Get("/categories", categoryHandler.List)

	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)

	api.Get("/users/:id/profile", profileHandler.Get)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.Update)

	// Admin panel (JWT + admin role required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/entries/:id/approve", entryHandler.Approve)
	admin.Post("/entries/:id/reject", entryHandler.Reject)

	admin.Post("/categories", categoryHandler.Add)
	admin.Put("/categories/:kind/:id", categoryHandler.Update)
	admin.Delete("/categories/:kind/:id", categoryHandler.Delete)

	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)

	admin.Get("/reports", reportHandler.List)
	admin.Put("/reports/:id", reportHandler.Action)

	admin.Get("/stats", dashboardHandler.Stats)
	admin.Get("/activity", dashboardHandler.RecentActivity)
}
