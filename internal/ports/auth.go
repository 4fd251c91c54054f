package ports

// Package ports defines interfaces (hexagonal ports) for session, identity,
// and notification behavior. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

// SessionStore persists and retrieves gateway sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenAuthenticator exchanges user credentials for a backend bearer token.
type TokenAuthenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// IdentityResolver turns a bearer token into the current user profile.
// Any error means the credential is invalid or expired as far as the
// bootstrap is concerned.
type IdentityResolver interface {
	Me(ctx context.Context, token string) (domainauth.User, error)
}

// SSOTokenExchanger trades a verified OpenID Connect ID token for a backend
// bearer token.
type SSOTokenExchanger interface {
	ExchangeOIDCToken(ctx context.Context, rawIDToken string) (string, error)
}

// AccountRegistrar creates a new backend account.
type AccountRegistrar interface {
	Register(ctx context.Context, username, email, password string) (int64, error)
}

// ProfileAPI updates the current user's profile fields.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, token string, fields map[string]any) (domainauth.User, error)
}

// BeginInput carries inputs for initiating an SSO flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the SSO code exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SSOProvider initiates and completes an OpenID Connect flow. Exchange
// returns the raw verified ID token, which the auth service trades with the
// backend for an access token.
type SSOProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce.
	Exchange(ctx context.Context, in ExchangeInput) (rawIDToken string, err error)
}
