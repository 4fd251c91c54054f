package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the gateway.
type AuthMode string

const (
	// AuthModeLocal exchanges username/password credentials with the
	// Wisherr backend (POST /auth/login).
	AuthModeLocal AuthMode = "local"
	// AuthModeOIDC authenticates against an OpenID Connect provider and
	// exchanges the identity token for a backend access token.
	AuthModeOIDC AuthMode = "oidc"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "local", "oidc":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: local, oidc)", v)
	}
}

// OIDCConfig contains OpenID Connect configuration (used when Mode=oidc).
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/oidc/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines how users sign in.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"local"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// SessionTTL is the lifetime of a gateway session. It should not
	// exceed the backend token lifetime (24h by default).
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}
