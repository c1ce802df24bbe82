// Package server wires the application together: storage, services,
// handlers, middleware, and routes. It is the composition root — every
// dependency is constructed here and nowhere else.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gamevault/gamevault/internal/auth"
	"github.com/gamevault/gamevault/internal/config"
	"github.com/gamevault/gamevault/internal/handler"
	"github.com/gamevault/gamevault/internal/middleware"
	"github.com/gamevault/gamevault/internal/repository"
	"github.com/gamevault/gamevault/internal/repository/memory"
	"github.com/gamevault/gamevault/internal/repository/mongodb"
	sqliteRepo "github.com/gamevault/gamevault/internal/repository/sqlite"
	"github.com/gamevault/gamevault/internal/service"
)

// Server owns the router and the storage handles it must close on shutdown.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger

	db     *sqliteRepo.DB       // nil when the mock provider is selected
	status *mongodb.StatusStore // nil when MONGO_URL is unset
}

// New assembles the server from config.
//
// The data provider is chosen once, here: either the SQLite store or the
// seeded in-memory catalog. The two are never mixed within a request —
// every service sees exactly one repository implementation.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}

	var games repository.GameRepository
	var admins repository.AdminRepository

	switch cfg.DataProvider {
	case "mock":
		store := memory.New(memory.WithSeed())
		games = store
		// Admin accounts always live in SQLite — the mock provider only
		// replaces the catalog reads the legacy frontend needed.
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		s.db = db
		admins = db
	case "sqlite", "":
		db, err := sqliteRepo.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		s.db = db
		games = db
		admins = db
	default:
		return nil, fmt.Errorf("unknown data provider %q", cfg.DataProvider)
	}

	// Articles only exist in the seeded provider; the catalog never had a
	// persistent articles table.
	articles := memory.New(memory.WithSeed())

	if cfg.MongoURL != "" {
		status, err := mongodb.New(context.Background(), cfg.MongoURL, cfg.MongoDBName)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		s.status = status
	} else {
		logger.Warn("MONGO_URL not set — status-check endpoints are disabled")
	}

	if err := s.setupRoutes(games, admins, articles); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes builds the middleware stack and the route table.
func (s *Server) setupRoutes(
	games repository.GameRepository,
	admins repository.AdminRepository,
	articles repository.ArticleRepository,
) error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Permissive cross-origin policy: the consumer site and the admin
	// dashboard are served from different origins than the API.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if s.config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	authService := service.NewAuthService(admins, tokens, passwords, s.logger)
	gameService := service.NewGameService(games, s.logger)
	articleService := service.NewArticleService(articles, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	gameHandler := handler.NewGameHandler(gameService, s.config.AdminListDrafts, s.logger)
	articleHandler := handler.NewArticleHandler(articleService, s.logger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/root", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Hello World"}`))
		})

		// Public catalog
		r.Get("/games", gameHandler.HandleList)
		r.Get("/games/{slug}", gameHandler.HandleGetBySlug)
		r.Get("/articles", articleHandler.HandleList)
		r.Get("/articles/{slug}", articleHandler.HandleGetBySlug)

		// Admin auth (public endpoints of the back office)
		r.Post("/admin/login", authHandler.HandleLogin)
		r.Post("/admin/register", authHandler.HandleRegister)

		// Admin CRUD — everything in this group requires a valid token.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin(tokens))
			r.Get("/admin/games", gameHandler.HandleAdminList)
			r.Post("/admin/games", gameHandler.HandleCreate)
			r.Put("/admin/games/{id}", gameHandler.HandleUpdate)
			r.Delete("/admin/games/{id}", gameHandler.HandleDelete)
		})

		// Status checks (only when Mongo is configured)
		if s.status != nil {
			statusService := service.NewStatusService(s.status, s.logger)
			statusHandler := handler.NewStatusHandler(statusService, s.logger)
			r.Post("/status", statusHandler.HandleCreate)
			r.Get("/status", statusHandler.HandleList)
		}
	})

	return nil
}

// Close releases the storage handles. Safe to call more than once.
func (s *Server) Close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("closing database", slog.String("error", err.Error()))
		}
		s.db = nil
	}
	if s.status != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.status.Close(ctx); err != nil {
			s.logger.Error("closing mongodb client", slog.String("error", err.Error()))
		}
		cancel()
		s.status = nil
	}
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests (30s
// budget), close the stores.
func (s *Server) Start() error {
	defer s.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("provider", s.config.DataProvider),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

// Router exposes the chi mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
