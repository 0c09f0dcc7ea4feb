// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port           string
	DatabaseDriver string
	DatabasePath   string // sqlite
	DatabaseURL    string // postgres
	SessionSecret  string
	CookieSecure   bool
	CORSOrigins    []string
	LoginRate      float64 // login attempts refilled per second
	LoginBurst     float64
}

// Load reads an optional .env file, then the process environment. Values
// already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:           get("PORT", "8080"),
		DatabaseDriver: get("DATABASE_DRIVER", DriverSQLite),
		DatabasePath:   get("DATABASE_PATH", "job-board.db"),
		DatabaseURL:    getenv("DATABASE_URL"),
		SessionSecret:  getenv("SESSION_SECRET"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: getenv("COOKIE_SECURE") != "false",
		CORSOrigins:  splitList(get("CORS_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.LoginRate, err = parseFloat(get("LOGIN_RATE", "0.2")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE: %w", err)
	}
	if cfg.LoginBurst, err = parseFloat(get("LOGIN_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_BURST: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET environment variable is required")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	switch c.DatabaseDriver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.LoginBurst < 1 {
		return errors.New("LOGIN_BURST must be at least 1")
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("must not be negative, got %v", f)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
