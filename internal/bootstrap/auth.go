package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/wisherr/wisherr-ui/config"
	"github.com/wisherr/wisherr-ui/internal/adapters/oidc"
	redisadapter "github.com/wisherr/wisherr-ui/internal/adapters/redis"
	"github.com/wisherr/wisherr-ui/internal/adapters/wisherr"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// AuthOptions contains dependencies for building the auth service.
type AuthOptions struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Backend     *wisherr.Client
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service for the configured auth mode.
// Credential login against the backend always works; OIDC login is layered
// on top when Mode=oidc and the provider is fully configured.
func BuildAuthService(opts AuthOptions) *service.AuthService {
	sessionStore := redisadapter.NewSessionStoreWithPrefix(opts.RedisClient, "session:")

	svcOpts := service.AuthServiceOptions{
		Authenticator: opts.Backend,
		Identities:    opts.Backend,
		Registrar:     opts.Backend,
		Profiles:      opts.Backend,
		Sessions:      sessionStore,
		SessionTTL:    opts.Auth.SessionTTL,
	}

	if opts.Auth.Mode == config.AuthModeOIDC {
		if provider := buildOIDCProvider(opts.Auth.OIDC, opts.Logger); provider != nil {
			svcOpts.SSO = provider
			svcOpts.Exchanger = opts.Backend
		}
	}

	return service.NewAuthService(svcOpts)
}

func buildOIDCProvider(cfg config.OIDCConfig, logger *slog.Logger) *oidc.Provider {
	if cfg.DiscoveryURL == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
		if logger != nil {
			logger.Warn("oidc mode selected but required config missing; falling back to credential login",
				"discovery_url_empty", cfg.DiscoveryURL == "",
				"client_id_empty", cfg.ClientID == "",
				"client_secret_empty", cfg.ClientSecret == "",
			)
		}
		return nil
	}

	provider, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scope:        cfg.Scope,
		DiscoveryURL: cfg.DiscoveryURL,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("failed to create oidc provider; falling back to credential login", "error", err)
		}
		return nil
	}

	return provider
}
