package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/api/handlers"
	"github.com/nico/guidepanel/internal/api/middleware"
	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/places"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	Store          *admin.Store
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	AuthService    *auth.Service
	PlacesService  *places.Service
	AllowedOrigins []string // CORS allowed origins
	RateLimitReqs  int      // Rate limit requests per window
	RateLimitSecs  int      // Rate limit window in seconds
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	if cfg.RateLimitReqs > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitReqs, cfg.RateLimitSecs))
	}

	// CORS - restrict to configured origins, defaulting to local dev hosts
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:4321"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Auth-Token"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.Store)
	sessionHandler := handlers.NewSessionHandler(cfg.AuthService, cfg.Store)
	propertyHandler := handlers.NewPropertyHandler(cfg.Store)
	userHandler := handlers.NewUserHandler(cfg.Store)
	placesHandler := handlers.NewPlacesHandler(cfg.PlacesService)

	// Health endpoint (no auth required)
	r.Get("/health", healthHandler.Health)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoint
		r.Post("/auth/login", sessionHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))

			r.Post("/auth/logout", sessionHandler.Logout)
			r.Get("/me", sessionHandler.Me)
			r.Get("/state", sessionHandler.State)

			r.Put("/selection", propertyHandler.Select)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", propertyHandler.List)
				r.Post("/", propertyHandler.Create)
				r.Post("/import", propertyHandler.Import)
				r.Get("/{id}", propertyHandler.Get)
				r.Put("/{id}", propertyHandler.Update)
				r.Delete("/{id}", propertyHandler.Delete)
				r.Post("/{id}/clone", propertyHandler.Clone)
				r.Put("/{id}/nodes/{node}", propertyHandler.UpdateNode)
				r.Get("/{id}/export", propertyHandler.Export)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/roles", userHandler.Roles)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/places", func(r chi.Router) {
				r.Get("/search", placesHandler.Search)
				r.Get("/{placeId}", placesHandler.Details)
			})
		})
	})

	return &Router{r}
}
