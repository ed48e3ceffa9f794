package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration, loaded once at startup from
// environment variables.
type Config struct {
	// Port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// CacheTTLMS is the freshness window for cached aggregations, in
	// milliseconds.
	CacheTTLMS int `env:"CACHE_TTL_MS" envDefault:"300000"`

	// RobloxBaseURL is the upstream games API host. Overridable so local
	// runs can point at a stub.
	RobloxBaseURL string `env:"ROBLOX_API_BASE_URL" envDefault:"https://games.roblox.com"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogPretty switches logs from JSON to human-readable console output.
	LogPretty bool `env:"LOG_PRETTY" envDefault:"false"`
}

// LoadConfig parses the environment into a Config and applies defensive
// defaults for values that parsed but make no sense.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = 8080
	}
	if cfg.CacheTTLMS <= 0 {
		cfg.CacheTTLMS = 300000
	}
	if cfg.RobloxBaseURL == "" {
		cfg.RobloxBaseURL = "https://games.roblox.com"
	}

	return cfg, nil
}

// CacheTTL returns the configured freshness window as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMS) * time.Millisecond
}
