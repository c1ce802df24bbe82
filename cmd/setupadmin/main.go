// Command setupadmin bootstraps the first administrator account.
//
// Admin accounts are created once via this tool, not through the API —
// the /api/admin/register endpoint exists for completeness, but a fresh
// deployment needs an account before anyone can log in.
//
// Usage:
//
//	setupadmin -email admin@example.com -password 'secret'
//
// The database path comes from the same DB_PATH env var the server uses.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamevault/gamevault/internal/auth"
	"github.com/gamevault/gamevault/internal/config"
	"github.com/gamevault/gamevault/internal/repository/sqlite"
	"github.com/gamevault/gamevault/internal/service"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *email == "" || *password == "" {
		logger.Error("both -email and -password are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if dbDir := filepath.Dir(cfg.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// Token service is unused for registration but required by the
	// service constructor; any valid secret works here.
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "setupadmin-local-secret"
	}
	tokens, err := auth.NewTokenService(secret)
	if err != nil {
		logger.Error("failed to create token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authService := service.NewAuthService(db, tokens, auth.NewPasswordService(), logger)

	user, err := authService.Register(context.Background(), *email, *password)
	if err != nil {
		logger.Error("failed to create admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin account created",
		slog.String("id", user.ID),
		slog.String("email", user.Email),
	)
}
