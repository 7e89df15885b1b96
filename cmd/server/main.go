package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nico/guidepanel/internal/admin"
	"github.com/nico/guidepanel/internal/api"
	"github.com/nico/guidepanel/internal/auth"
	"github.com/nico/guidepanel/internal/guide/fixtures"
	"github.com/nico/guidepanel/internal/places"
	"github.com/nico/guidepanel/pkg/config"
	"github.com/nico/guidepanel/pkg/util"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := util.NewLogger(cfg.Server.Env)
	slog.SetDefault(logger)

	logger.Info("starting guidepanel server",
		"env", cfg.Server.Env,
		"addr", cfg.Server.Addr(),
	)

	// Seed the store from fixtures
	properties, users, err := fixtures.Load(cfg.Fixtures.PropertiesPath, cfg.Fixtures.UsersPath, time.Now())
	if err != nil {
		logger.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}
	store := admin.NewStore(properties, users, admin.WithLogger(logger))
	logger.Info("store seeded", "properties", len(properties), "users", len(users))

	// Resolve the console passphrase hash
	passwordHash := []byte(cfg.Session.PasswordHash)
	if len(passwordHash) == 0 {
		passwordHash, err = auth.HashPassword(cfg.Session.ConsolePassword)
		if err != nil {
			logger.Error("failed to hash console password", "error", err)
			os.Exit(1)
		}
		logger.Warn("SESSION_PASSWORD_HASH not set, hashing SESSION_CONSOLE_PASSWORD at boot")
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.Session.JWTSecret, cfg.Session.Expiry())
	authService := auth.NewService(store, jwtService, passwordHash, logger)

	placesService, err := places.NewService(cfg.Maps.APIKey, cfg.Maps.CacheTTL, logger)
	if err != nil {
		logger.Error("failed to create places service", "error", err)
		os.Exit(1)
	}
	if !placesService.Enabled() {
		logger.Warn("GOOGLE_MAPS_API_KEY not set, places search disabled")
	}

	// Create router
	router := api.NewRouter(api.RouterConfig{
		Store:          store,
		Logger:         logger,
		JWTService:     jwtService,
		AuthService:    authService,
		PlacesService:  placesService,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitReqs:  cfg.RateLimit.Requests,
		RateLimitSecs:  cfg.RateLimit.WindowSeconds,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
