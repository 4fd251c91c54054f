package config

import (
	"golang.org/x/net/publicsuffix"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://wisherr.example.com").
	// Used when generating absolute URLs such as the OIDC redirect.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`

	// CompressionEnabled enables gzip compression for text-based responses.
	CompressionEnabled bool `env:"HTTP_COMPRESSION_ENABLED" envDefault:"false"`

	// CompressionLevel is the gzip compression level (1-9).
	// Default is 6 (standard gzip default).
	CompressionLevel int `env:"HTTP_COMPRESSION_LEVEL" envDefault:"6"`

	// StaticDir points at the built frontend bundle. When empty the
	// gateway serves only the JSON API.
	StaticDir string `env:"STATIC_DIR" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	// Clamp compression level to valid gzip range (1-9)
	if h.CompressionLevel < 1 {
		h.CompressionLevel = 1
	}
	if h.CompressionLevel > 9 {
		h.CompressionLevel = 9
	}

	// A cookie domain that is itself a public suffix (e.g. "com",
	// "github.io") would be rejected by browsers or, worse, leak the
	// session cookie to sibling domains. Fall back to the request domain.
	if h.CookieDomain != "" {
		domain := h.CookieDomain
		if suffix, _ := publicsuffix.PublicSuffix(domain); suffix == domain {
			h.CookieDomain = ""
		}
	}
}
