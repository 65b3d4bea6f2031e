// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer sources.
// - External errors must be wrapped via this package's sentinel errors.
package config

import "time"

// Store backend names accepted in StoreBackend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StoreBackend selects the persistence layer: memory or sqlite.
	StoreBackend string `koanf:"store_backend"`

	// SQLitePath is the database file used when StoreBackend is sqlite.
	SQLitePath string `koanf:"sqlite_path"`

	// Seed loads the park catalog into an empty store at startup.
	Seed bool `koanf:"seed"`

	// RecentVotesLimit is the default page size for the recent votes feed.
	RecentVotesLimit int `koanf:"recent_votes_limit"`

	// MaxRecentVotesLimit caps GET /api/votes/recent?limit.
	MaxRecentVotesLimit int `koanf:"max_recent_votes_limit"`

	// HTTP server timeouts.
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8080",
		StoreBackend:        BackendMemory,
		SQLitePath:          "vista.db",
		Seed:                true,
		RecentVotesLimit:    10,
		MaxRecentVotesLimit: 100,
		ReadTimeout:         10 * time.Second,
		WriteTimeout:        30 * time.Second,
		ShutdownTimeout:     10 * time.Second,
	}
}
