package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/freelanceshield/api/internal/api/handlers"
	"github.com/freelanceshield/api/internal/api/middleware"
	"github.com/freelanceshield/api/internal/config"
	"github.com/freelanceshield/api/internal/pkg/logger"
	"github.com/freelanceshield/api/internal/pkg/metrics"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Review   *handlers.ReviewHandler
	Template *handlers.TemplateHandler
	Billing  *handlers.BillingHandler
	Letter   *handlers.LetterHandler
	Admin    *handlers.AdminHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Auth endpoints
		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/refresh", h.Auth.RefreshToken)

		// Stripe webhook (signature-verified, not JWT)
		r.Post("/api/v1/billing/webhook", h.Billing.Webhook)

		// Plan catalog for the pricing page
		r.Get("/api/v1/billing/plans", h.Billing.ListPlans)

	})

	// Shared review reports. Auth is optional here; a valid token only
	// attributes the view in the request log.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuthMiddleware(cfg.Auth.JWTSecret))
		r.Get("/api/v1/shared/{token}", h.Review.Shared)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		r.Use(middleware.UserRateLimit(10, 30))

		// Auth
		r.Get("/api/v1/auth/me", h.Auth.Me)
		r.Post("/api/v1/auth/logout", h.Auth.Logout)

		// Profile settings
		r.Route("/api/v1/profile", func(r chi.Router) {
			r.Get("/", h.Profile.Get)
			r.Patch("/", h.Profile.Update)
			r.Delete("/", h.Profile.Delete)
		})

		// Contract reviews
		r.Route("/api/v1/reviews", func(r chi.Router) {
			r.Get("/", h.Review.List)
			r.Post("/", h.Review.Create)
			r.Get("/{id}", h.Review.Get)
			r.Delete("/{id}", h.Review.Delete)
			r.Post("/{id}/share", h.Review.Share)
			r.Post("/{id}/negotiate", h.Review.Negotiate)
		})

		// Template library
		r.Route("/api/v1/templates", func(r chi.Router) {
			r.Get("/", h.Template.List)
			r.Get("/{id}/download", h.Template.Download)
		})

		// Billing & subscription
		r.Route("/api/v1/billing", func(r chi.Router) {
			r.Post("/checkout", h.Billing.CreateCheckout)
			r.Post("/portal", h.Billing.CreatePortal)
		})

		// Demand letters
		r.Post("/api/v1/demand-letter", h.Letter.Generate)

		// Admin back-office
		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Get("/users", h.Admin.ListUsers)
			r.Patch("/users", h.Admin.UpdateUser)
			r.Get("/reviews", h.Admin.ListReviews)
			r.Delete("/reviews", h.Admin.DeleteReview)
			r.Get("/templates", h.Admin.ListTemplates)
			r.Post("/templates", h.Admin.CreateTemplate)
			r.Patch("/templates/{id}", h.Admin.UpdateTemplate)
			r.Delete("/templates/{id}", h.Admin.DeleteTemplate)
			r.Get("/stats", h.Admin.GetStats)
		})
	})

	return r
}
