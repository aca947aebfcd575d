package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultDatabaseURL     = "meetslot.db"
	defaultShutdownTimeout = "10s"
)

type RuntimeConfig struct {
	AppEnv          string
	HTTPAddr        string
	DatabaseURL     string
	ShutdownTimeout time.Duration
}

func LoadRuntimeConfig() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	var err error
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.DatabaseURL == "" || cfg.DatabaseURL == defaultDatabaseURL {
			return fmt.Errorf("in prod/release DATABASE_URL must be set and not default")
		}
		if !strings.HasPrefix(cfg.DatabaseURL, "postgres://") &&
			!strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
			return fmt.Errorf("in prod/release DATABASE_URL must point at PostgreSQL")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
