package config

import (
	"fmt"
	"time"

	apperrors "entry-tracker-backend/internal/errors"

	"github.com/spf13/viper"
)

const (
	SessionStoreDatabase = "database"
	SessionStoreMemory   = "memory"

	minProductionHashIterations = 100000
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Session configuration
	SessionStore           string        `mapstructure:"SESSION_STORE"`
	SessionCookieName      string        `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieSecure    bool          `mapstructure:"SESSION_COOKIE_SECURE"`
	SessionIdleTimeout     time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	SessionAbsoluteTimeout time.Duration `mapstructure:"SESSION_ABSOLUTE_TIMEOUT"`
	SessionSweepInterval   time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	// Password hashing
	PasswordHashIterations int `mapstructure:"PASSWORD_HASH_ITERATIONS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "entry_tracker")
	v.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Session defaults
	v.SetDefault("SESSION_STORE", SessionStoreDatabase)
	v.SetDefault("SESSION_COOKIE_NAME", "entry_session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SESSION_IDLE_TIMEOUT", 2*time.Hour)
	v.SetDefault("SESSION_ABSOLUTE_TIMEOUT", 24*time.Hour)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 10*time.Minute)

	v.SetDefault("PASSWORD_HASH_ITERATIONS", 600000)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	switch config.SessionStore {
	case SessionStoreDatabase, SessionStoreMemory:
	default:
		return apperrors.NewConfigurationError("unsupported session store %q", config.SessionStore)
	}

	if config.SessionCookieName == "" {
		return apperrors.NewConfigurationError("session cookie name is required")
	}
	if config.SessionIdleTimeout <= 0 || config.SessionAbsoluteTimeout <= 0 {
		return apperrors.NewConfigurationError("session timeouts must be positive")
	}
	if config.SessionIdleTimeout > config.SessionAbsoluteTimeout {
		return apperrors.NewConfigurationError("SESSION_IDLE_TIMEOUT must not exceed SESSION_ABSOLUTE_TIMEOUT")
	}
	if config.SessionSweepInterval <= 0 {
		return apperrors.NewConfigurationError("SESSION_SWEEP_INTERVAL must be positive")
	}
	if config.PasswordHashIterations <= 0 {
		return apperrors.NewConfigurationError("PASSWORD_HASH_ITERATIONS must be positive")
	}

	if config.Environment == "production" {
		if !config.SessionCookieSecure {
			return apperrors.NewConfigurationError("SESSION_COOKIE_SECURE must be enabled in production")
		}
		if config.PasswordHashIterations < minProductionHashIterations {
			return apperrors.NewConfigurationError("PASSWORD_HASH_ITERATIONS must be at least %d in production", minProductionHashIterations)
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
