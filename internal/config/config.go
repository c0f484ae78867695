// Package config loads service configuration from an optional YAML file
// overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Luchito30/ShopCart/internal/catalog"
	"github.com/Luchito30/ShopCart/internal/session"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	HTTPPort string `yaml:"http_port"`

	CatalogURL string `yaml:"catalog_url"`

	// Durations are set via environment only (Go duration strings do not
	// round-trip through YAML).
	CatalogTimeout  time.Duration `yaml:"-"`
	RequestTimeout  time.Duration `yaml:"-"`
	ShutdownTimeout time.Duration `yaml:"-"`

	// LoginDelay is the artificial latency of the mock credential check.
	LoginDelay time.Duration `yaml:"-"`

	// Users accepted by the mock credential check.
	Users []session.Credentials `yaml:"users"`
}

func defaults() *Config {
	return &Config{
		Env:             "dev",
		LogLevel:        "info",
		HTTPPort:        "8080",
		CatalogURL:      catalog.DefaultURL,
		CatalogTimeout:  10 * time.Second,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LoginDelay:      time.Second,
		Users: []session.Credentials{
			{Username: "user1", Password: "password1"},
			{Username: "user2", Password: "password2"},
		},
	}
}

// Load builds the config: defaults, then the YAML file named by CONFIG_FILE
// (if set), then environment variables.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.CatalogURL = getEnv("CATALOG_URL", cfg.CatalogURL)
	cfg.CatalogTimeout = getEnvDuration("CATALOG_TIMEOUT", cfg.CatalogTimeout)
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.LoginDelay = getEnvDuration("LOGIN_DELAY", cfg.LoginDelay)

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
