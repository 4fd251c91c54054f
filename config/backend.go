package config

import "strings"

// BackendConfig contains configuration for the Wisherr backend API,
// the sole external collaborator of the gateway.
type BackendConfig struct {
	// BaseURL is the root of the backend API. When empty, requests are
	// issued against the same-origin relative path "/api" so a reverse
	// proxy in front of the gateway can route them. A configured URL is
	// normalized to end in "/api".
	BaseURL string `env:"URL" envDefault:""`
}

// Sanitize normalizes the backend base URL.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = NormalizeAPIBase(b.BaseURL)
}

// NormalizeAPIBase strips trailing slashes and ensures the "/api" prefix
// is present, mirroring how deployments point the UI at the backend.
// An empty input stays empty (same-origin relative mode).
func NormalizeAPIBase(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := strings.TrimRight(raw, "/")
	if strings.HasSuffix(cleaned, "/api") {
		return cleaned
	}
	return cleaned + "/api"
}
