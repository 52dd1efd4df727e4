// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/clubsite/internal/auth"
	"github.com/olegiv/clubsite/internal/config"
	"github.com/olegiv/clubsite/internal/handler"
	"github.com/olegiv/clubsite/internal/middleware"
	"github.com/olegiv/clubsite/internal/model"
	"github.com/olegiv/clubsite/internal/store"
	"github.com/olegiv/clubsite/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// registerContent registers the uniform CRUD routes for a content kind.
// Reads are public; mutations go through the bearer guard. withUpdate is
// false for kinds without an update surface (gallery images).
func registerContent[T, C, U any](r chi.Router, base string, h *handler.Resource[T, C, U],
	bearer func(http.Handler) http.Handler, withUpdate bool) {
	r.Get(base, h.List)
	r.With(bearer).Post(base, h.Create)
	if withUpdate {
		r.With(bearer).Put(base+"/{id}", h.Update)
	}
	r.With(bearer).Delete(base+"/{id}", h.Delete)
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "clubsite - Community Club REST API\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_JWT_SECRET       Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_MONGO_URL        MongoDB connection string (default: mongodb://localhost:27017)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_DB_NAME          Database name (default: clubsite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_TOKEN_TTL_HOURS  Bearer token lifetime in hours (default: 24)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_CORS_ORIGINS     Comma-separated allowed origins (default: *)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CLUBSITE_DO_SEED          Seed content collections at startup (default: false)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("clubsite %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create version info from build-time injected values
	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Connect to the datastore
	slog.Info("connecting to database", "url", cfg.MongoURL, "db", cfg.DBName)
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.Open(connectCtx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	users := store.NewUsers(db)
	if err := users.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}
	slog.Info("database ready")

	// Seed content collections if enabled
	if cfg.DoSeed {
		seeded, err := store.Seed(connectCtx, db)
		if err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		if seeded {
			slog.Info("content collections seeded")
		}
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())

	// Content repositories, each with its own list ordering. Gallery
	// images carry no updated_at.
	boardMembers := store.NewBoardMembers(db)
	pastEvents := store.NewPastEvents(db)
	upcomingEvents := store.NewUpcomingEvents(db)
	news := store.NewNews(db)
	gallery := store.NewGallery(db)
	contact := store.NewContact(db)
	settings := store.NewSettings(db)

	// Initialize handlers
	authHandler := handler.NewAuth(users, tokens)
	boardHandler := handler.NewResource[model.BoardMember, model.BoardMemberCreate, model.BoardMemberUpdate]("board member", boardMembers)
	pastHandler := handler.NewResource[model.PastEvent, model.PastEventCreate, model.PastEventUpdate]("past event", pastEvents)
	upcomingHandler := handler.NewResource[model.UpcomingEvent, model.UpcomingEventCreate, model.UpcomingEventUpdate]("upcoming event", upcomingEvents)
	newsHandler := handler.NewResource[model.NewsArticle, model.NewsArticleCreate, model.NewsArticleUpdate]("news article", news)
	galleryHandler := handler.NewResource[model.GalleryImage, model.GalleryImageCreate, struct{}]("gallery image", gallery)
	contactHandler := handler.NewContact(contact)
	settingsHandler := handler.NewSettings(settings)
	seedHandler := handler.NewSeeder(func(ctx context.Context) (bool, error) {
		return store.Seed(ctx, db)
	})
	healthHandler := handler.NewHealth(db, versionInfo)

	bearer := middleware.Bearer(tokens, users, model.RoleAdmin)

	// Rate limiter for the unauthenticated write endpoints
	// (registration, login, contact submission)
	publicRateLimiter := middleware.NewRateLimiter(10.0, 20)
	slog.Info("public rate limiter initialized", "rate", "10 req/s", "burst", 20)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))                    // Gzip compression with level 5
	r.Use(chimw.GetHead)                        // Handle HEAD requests for uptime monitoring
	r.Use(middleware.Timeout(30 * time.Second)) // 30 second request timeout

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Routes
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Status)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/auth", func(r chi.Router) {
		r.With(publicRateLimiter.Middleware()).Post("/register", authHandler.Register)
		r.With(publicRateLimiter.Middleware()).Post("/login", authHandler.Login)
		r.With(bearer).Get("/me", authHandler.Me)
	})

	registerContent(r, "/board-members", boardHandler, bearer, true)
	registerContent(r, "/events/past", pastHandler, bearer, true)
	registerContent(r, "/events/upcoming", upcomingHandler, bearer, true)
	registerContent(r, "/news", newsHandler, bearer, true)
	registerContent(r, "/gallery", galleryHandler, bearer, false)

	r.With(publicRateLimiter.Middleware()).Post("/contact/submit", contactHandler.Submit)

	r.Get("/settings", settingsHandler.Get)
	r.With(bearer).Put("/settings", settingsHandler.Update)

	r.Post("/seed-database", seedHandler.Seed)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteNotFound(w, "Resource not found")
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second, // Mitigates slowloris attacks
		MaxHeaderBytes:    1 << 20,          // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
