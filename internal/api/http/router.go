package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/release-notes-service/internal/api/http/handlers"
	"github.com/spec-kit/release-notes-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Releases       *handlers.ReleasesHandler
	PublicReleases *handlers.PublicReleasesHandler
	Hiring         *handlers.HiringHandler
	Portfolio      *handlers.PortfolioHandler
	AuthMiddleware *auth.AuthMiddleware
	AdminGate      *auth.AdminKeyGate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	releases := app.Group("/releases", cfg.AuthMiddleware.Handle)
	releases.Get("", cfg.Releases.List)
	releases.Post("", cfg.Releases.Create)
	releases.Get("/:id", cfg.Releases.Get)
	releases.Put("/:id", cfg.Releases.Update)
	releases.Delete("/:id", cfg.Releases.Delete)
	releases.Post("/:id/publish", cfg.Releases.Publish)
	releases.Post("/:id/unpublish", cfg.Releases.Unpublish)

	public := app.Group("/public")
	public.Get("/releases", cfg.PublicReleases.List)
	public.Get("/releases/:slug", cfg.PublicReleases.Get)

	// The hiring surface mixes public reads with admin-gated writes, so
	// routes are registered individually rather than gating the group.
	hiring := app.Group("/api/hiring")
	hiring.Get("/banner", cfg.Hiring.GetBanner)
	hiring.Get("/contacts", cfg.Hiring.ListContacts)
	hiring.Get("/dashboard", cfg.Hiring.Dashboard)
	hiring.Get("/applications", cfg.AdminGate.Handle, cfg.Hiring.ListApplications)
	hiring.Post("/applications", cfg.AdminGate.Handle, cfg.Hiring.CreateApplication)
	hiring.Put("/applications/:id", cfg.AdminGate.Handle, cfg.Hiring.UpdateApplication)
	hiring.Delete("/applications/:id", cfg.AdminGate.Handle, cfg.Hiring.DeleteApplication)
	hiring.Post("/contacts", cfg.AdminGate.Handle, cfg.Hiring.CreateContact)
	hiring.Put("/contacts/:id", cfg.AdminGate.Handle, cfg.Hiring.UpdateContact)
	hiring.Delete("/contacts/:id", cfg.AdminGate.Handle, cfg.Hiring.DeleteContact)
	hiring.Put("/banner", cfg.AdminGate.Handle, cfg.Hiring.UpsertBanner)

	portfolio := app.Group("/api/portfolio")
	portfolio.Get("/testimonials", cfg.Portfolio.Testimonials)
	portfolio.Get("/testimonials/random", cfg.Portfolio.RandomTestimonial)
	portfolio.Get("/skills", cfg.Portfolio.Skills)
	portfolio.Get("/projects", cfg.Portfolio.Projects)
	portfolio.Get("/stats", cfg.Portfolio.Stats)
	portfolio.Post("/views", cfg.Portfolio.TrackView)
	portfolio.Get("/views", cfg.Portfolio.Views)
	portfolio.Post("/contact", cfg.Portfolio.SubmitContact)
	portfolio.Get("/messages", cfg.Portfolio.Messages)
}
