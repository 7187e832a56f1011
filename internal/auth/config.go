package auth

import (
	"time"

	"entry-tracker-backend/internal/config"
	apperrors "entry-tracker-backend/internal/errors"
)

// AuthConfig holds the session and password settings used by the auth package
type AuthConfig struct {
	CookieName      string
	CookieSecure    bool
	IdleTimeout     time.Duration
	AbsoluteTimeout time.Duration
	HashIterations  int
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		CookieName:      cfg.SessionCookieName,
		CookieSecure:    cfg.SessionCookieSecure,
		IdleTimeout:     cfg.SessionIdleTimeout,
		AbsoluteTimeout: cfg.SessionAbsoluteTimeout,
		HashIterations:  cfg.PasswordHashIterations,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.CookieName == "" {
		return apperrors.NewConfigurationError("session cookie name is required")
	}

	if c.AbsoluteTimeout <= 0 {
		return apperrors.NewConfigurationError("absolute session timeout must be positive")
	}

	if c.IdleTimeout <= 0 || c.IdleTimeout > c.AbsoluteTimeout {
		return apperrors.NewConfigurationError("idle session timeout must be positive and not exceed the absolute timeout")
	}

	if c.HashIterations <= 0 {
		return apperrors.NewConfigurationError("password hash iterations must be positive")
	}

	return nil
}
