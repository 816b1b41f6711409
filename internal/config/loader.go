package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the loader,
// e.g. WT_DB_DIR or WT_BILLING_DEFAULT_RATE
const EnvPrefix = "WT"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader. An empty configFile looks
// for config.yaml in the default directory and skips it when missing.
func NewLoader(configFile string) *Loader {
	return &Loader{
		v:          viper.New(),
		configFile: configFile,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file
// 3. Override with environment variables
// Command line flags are applied afterwards by LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults(NewConfig())

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(DefaultDir())
	}

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !(l.configFile == "" && stderrors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) setDefaults(defaults *Config) {
	l.v.SetDefault("db.dir", defaults.Database.Dir)
	l.v.SetDefault("db.filename", defaults.Database.Filename)
	l.v.SetDefault("db.query_timeout", defaults.Database.QueryTimeout)
	l.v.SetDefault("db.write_timeout", defaults.Database.WriteTimeout)
	l.v.SetDefault("db.dir_permissions", defaults.Database.DirPermissions)

	l.v.SetDefault("billing.default_rate", defaults.Billing.DefaultRate)
	l.v.SetDefault("billing.currency", defaults.Billing.Currency)
	l.v.SetDefault("billing.max_break_hours", defaults.Billing.MaxBreakHours)

	l.v.SetDefault("display.time_format", defaults.Display.TimeFormat)
	l.v.SetDefault("display.default_format", defaults.Display.DefaultFormat)
	l.v.SetDefault("display.color", defaults.Display.Color)

	l.v.SetDefault("app.timeout", defaults.Application.Timeout)
	l.v.SetDefault("app.verbose", defaults.Application.Verbose)

	l.v.SetDefault("log.level", defaults.Log.Level)
	l.v.SetDefault("log.format", defaults.Log.Format)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Billing overrides
	DefaultRate *float64
	Currency    *string

	// Display overrides
	TimeFormat *string
	NoColor    *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Log overrides
	LogLevel *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Billing overrides
	if overrides.DefaultRate != nil {
		config.Billing.DefaultRate = *overrides.DefaultRate
	}
	if overrides.Currency != nil {
		config.Billing.Currency = strings.ToUpper(*overrides.Currency)
	}

	// Display overrides
	if overrides.TimeFormat != nil {
		config.Display.TimeFormat = *overrides.TimeFormat
	}
	if overrides.NoColor != nil && *overrides.NoColor {
		config.Display.Color = false
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
		if *overrides.Verbose {
			config.Log.Level = "debug"
		}
	}

	// Log overrides
	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
}
