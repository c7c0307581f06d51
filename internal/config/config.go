package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server settings, loaded from the environment with an
// optional .env file underneath.
type Config struct {
	DBPath        string
	Addr          string
	RetentionDays int
	PurgeSchedule string
	// JWTSecret overrides the database-stored secret when set. Useful
	// for running several instances against one database.
	JWTSecret string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over it.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		DBPath:        envOr("DB_PATH", "envanter.sqlite3"),
		Addr:          envOr("ADDR", ":8080"),
		RetentionDays: 15,
		PurgeSchedule: envOr("PURGE_SCHEDULE", "0 3 * * *"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return Config{}, fmt.Errorf("invalid RETENTION_DAYS %q", v)
		}
		cfg.RetentionDays = days
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
