package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the work time tracker
type Config struct {
	Database    DatabaseConfig    `mapstructure:"db"`
	Billing     BillingConfig     `mapstructure:"billing"`
	Display     DisplayConfig     `mapstructure:"display"`
	Application ApplicationConfig `mapstructure:"app"`
	Log         LogConfig         `mapstructure:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
}

// BillingConfig holds the rate and currency used for new entries
type BillingConfig struct {
	DefaultRate   float64 `mapstructure:"default_rate"`
	Currency      string  `mapstructure:"currency"`
	MaxBreakHours float64 `mapstructure:"max_break_hours"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat    string `mapstructure:"time_format"` // "24h" or "12h"
	DefaultFormat string `mapstructure:"default_format"`
	Color         bool   `mapstructure:"color"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Verbose bool          `mapstructure:"verbose"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDir(),
			Filename:       "wt.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Billing: BillingConfig{
			DefaultRate:   25,
			Currency:      "EUR",
			MaxBreakHours: 24,
		},
		Display: DisplayConfig{
			TimeFormat:    "24h",
			DefaultFormat: "table",
			Color:         true,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultDir returns the directory holding the database and config file
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".wt")
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == ":memory:" {
		return c.Database.Filename
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "db.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "db.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "db.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "db.write_timeout", Message: "write timeout must be positive"}
	}

	// Rate and currency are checked against the currency list by validation.SettingsValidator
	if c.Billing.DefaultRate < 0 {
		return &ConfigError{Field: "billing.default_rate", Message: "default rate cannot be negative"}
	}
	if c.Billing.Currency == "" {
		return &ConfigError{Field: "billing.currency", Message: "currency cannot be empty"}
	}
	if c.Billing.MaxBreakHours <= 0 || c.Billing.MaxBreakHours > 24 {
		return &ConfigError{Field: "billing.max_break_hours", Message: "max break hours must be between 0 and 24"}
	}

	// Validate display configuration
	if c.Display.TimeFormat != "24h" && c.Display.TimeFormat != "12h" {
		return &ConfigError{Field: "display.time_format", Message: "time format must be 24h or 12h"}
	}
	switch c.Display.DefaultFormat {
	case "table", "json", "yaml":
	default:
		return &ConfigError{Field: "display.default_format", Message: "default format must be table, json or yaml"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "app.timeout", Message: "application timeout must be positive"}
	}

	// Validate log configuration
	switch c.Log.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be console or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
