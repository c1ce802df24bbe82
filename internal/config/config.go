// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting, parsed from env vars via struct tags.
type Config struct {
	Port   int    `env:"PORT" envDefault:"8080"`
	DBPath string `env:"DB_PATH" envDefault:"data/gamevault.db"`

	// JWTSecret signs admin bearer tokens. Must be at least 16 chars;
	// generate with: openssl rand -hex 32
	JWTSecret string `env:"JWT_SECRET"`

	// MongoURL enables the status-check endpoints when set; the server
	// starts without them otherwise.
	MongoURL    string `env:"MONGO_URL"`
	MongoDBName string `env:"DB_NAME" envDefault:"gamevault"`

	// CORSOrigins is a comma-separated allow-list; "*" allows everyone.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// DataProvider selects the game/article storage backend:
	// "sqlite" (default) or "mock" for the seeded in-memory catalog.
	DataProvider string `env:"DATA_PROVIDER" envDefault:"sqlite"`

	// AdminListDrafts controls whether GET /api/admin/games includes
	// unpublished games.
	AdminListDrafts bool `env:"ADMIN_LIST_DRAFTS" envDefault:"true"`
}

// Load reads .env (if present) and parses the environment into a Config.
// A missing .env is not an error — production sets real env vars.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
