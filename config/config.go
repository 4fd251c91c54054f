package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Authentication and session configuration
//   - backend.go: Wisherr backend API configuration
//   - http.go: HTTP server configuration
//   - redis.go: Redis configuration
type AppConfig struct {
	// IsDev controls development mode behavior (relaxed cookies, verbose logs).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Backend API configuration
	Backend BackendConfig `envPrefix:"BACKEND_"`

	// Redis configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Site branding configuration
	Site SiteConfig `envPrefix:"SITE_"`
}

// SiteConfig holds branding defaults used before (or instead of) the
// backend's /public/site-info response.
type SiteConfig struct {
	// FallbackTitle is shown when the site-info fetch has not completed or failed.
	FallbackTitle string `env:"FALLBACK_TITLE" envDefault:"Wisherr"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Auth.Sanitize()

	if c.Site.FallbackTitle == "" {
		c.Site.FallbackTitle = "Wisherr"
	}

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
