// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 5000)
	Port int `env:"SERVER_PORT" default:"5000"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	// Driver selects the database/sql driver: sqlite3 or pgx (default: sqlite3)
	Driver string `env:"DB_DRIVER" default:"sqlite3"`

	// URL is the data source name: a file path for sqlite3, a connection string for pgx.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" default:"wfm_data.db"`

	// MaxOpenConns caps open connections in the pool (default: 4)
	MaxOpenConns int `env:"DB_MAX_OPEN_CONNS" default:"4"`

	// MaxIdleConns caps idle connections kept in the pool (default: 2)
	MaxIdleConns int `env:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 1h)
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" default:"1h"`
}

// ImportConfig holds workbook import settings.
type ImportConfig struct {
	// Workbook is the default workbook path used when none is given on the command line.
	Workbook string `env:"WFM_WORKBOOK"`

	// Timeout bounds a whole import pass (default: 5m)
	Timeout time.Duration `env:"IMPORT_TIMEOUT" default:"5m"`

	// Interval makes the server re-import Workbook when it changes; 0 disables (default: 0)
	Interval time.Duration `env:"IMPORT_INTERVAL" default:"0s"`

	// KeepRuns is how many import history rows the server keeps (default: 500)
	KeepRuns int `env:"IMPORT_KEEP_RUNS" default:"500"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// RequireAPIKey enables X-API-Key authentication on /api routes (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted API keys
	APIKeys []string `env:"API_KEYS"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled mounts /metrics on the API server (default: true)
	Enabled bool `env:"METRICS_ENABLED" default:"true"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
