package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.TokenAuthenticator
	Identities    ports.IdentityResolver
	Registrar     ports.AccountRegistrar
	Profiles      ports.ProfileAPI
	Sessions      ports.SessionStore
	SSO           ports.SSOProvider       // nil unless OIDC login is configured
	Exchanger     ports.SSOTokenExchanger // required when SSO is set
	SessionTTL    time.Duration
}

// AuthService orchestrates login flows: credential or OIDC exchange, profile
// resolution, and session persistence.
type AuthService struct {
	authenticator ports.TokenAuthenticator
	registrar     ports.AccountRegistrar
	profiles      ports.ProfileAPI
	sessions      ports.SessionStore
	sso           ports.SSOProvider
	exchanger     ports.SSOTokenExchanger
	boot          *SessionBootstrap
	sessionTTL    time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		authenticator: opts.Authenticator,
		registrar:     opts.Registrar,
		profiles:      opts.Profiles,
		sessions:      opts.Sessions,
		sso:           opts.SSO,
		exchanger:     opts.Exchanger,
		boot:          NewSessionBootstrap(opts.Identities),
		sessionTTL:    ttl,
	}
}

// SSOEnabled reports whether an OIDC provider is configured.
func (s *AuthService) SSOEnabled() bool { return s.sso != nil }

// Bootstrap exposes the identity bootstrap for status inspection.
func (s *AuthService) Bootstrap() *SessionBootstrap { return s.boot }

// Login exchanges credentials for a backend token, resolves the profile, and
// persists a new session. Token and profile land in one record: a failed
// profile resolution leaves no session behind.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	if username == "" {
		return domainauth.Session{}, apperrors.ValidationField("username", "username is required")
	}
	if password == "" {
		return domainauth.Session{}, apperrors.ValidationField("password", "password is required")
	}

	token, err := s.authenticator.Login(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "login failed")
	}

	return s.establishSession(ctx, token)
}

// CompleteSSOLogin finishes an OIDC flow: the verified ID token is traded
// with the backend for an access token, then the session is established the
// same way a credential login is.
func (s *AuthService) CompleteSSOLogin(ctx context.Context, in ports.ExchangeInput) (domainauth.Session, error) {
	if s.sso == nil || s.exchanger == nil {
		return domainauth.Session{}, apperrors.Unavailable("sso login is not configured")
	}

	rawIDToken, err := s.sso.Exchange(ctx, in)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "sso exchange failed")
	}

	token, err := s.exchanger.ExchangeOIDCToken(ctx, rawIDToken)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "sso token exchange failed")
	}

	return s.establishSession(ctx, token)
}

// BeginSSOLogin starts the OIDC flow and returns the provider auth URL with
// state and nonce for the callback.
func (s *AuthService) BeginSSOLogin(ctx context.Context, redirectURL string) (authURL, state, nonce string, err error) {
	if s.sso == nil {
		return "", "", "", apperrors.Unavailable("sso login is not configured")
	}
	return s.sso.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
}

// Register creates a backend account and returns its id. The caller logs in
// separately; registration never establishes a session.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" {
		return 0, apperrors.ValidationField("username", "username is required")
	}
	if email == "" {
		return 0, apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return 0, apperrors.ValidationField("password", "password is required")
	}

	id, err := s.registrar.Register(ctx, username, email, password)
	if err != nil {
		return 0, fmt.Errorf("register account: %w", err)
	}
	return id, nil
}

func (s *AuthService) establishSession(ctx context.Context, token string) (domainauth.Session, error) {
	user, err := s.boot.Resolve(ctx, token)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "resolve profile")
	}

	session, err := domainauth.NewSession(uuid.NewString(), token, user, time.Now().Add(s.sessionTTL))
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("build session: %w", err)
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}
	return session, nil
}

// GetSession retrieves a live session by ID. An expired session is deleted
// and reported as unauthorized.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, apperrors.Unauthorized("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "get session")
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return domainauth.Session{}, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return domainauth.Session{}, apperrors.Unauthorized("session expired")
	}

	return session, nil
}

// RefreshProfile re-resolves the session's profile from the backend and
// stores the updated session. If the token no longer resolves, the session
// is destroyed: a profile must never outlive its credential.
func (s *AuthService) RefreshProfile(ctx context.Context, sessionID string) (domainauth.Session, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, err
	}

	user, err := s.boot.Resolve(ctx, session.Token)
	if err != nil {
		if logoutErr := s.Logout(ctx, sessionID); logoutErr != nil {
			return domainauth.Session{}, errors.Join(err, logoutErr)
		}
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "profile refresh failed")
	}

	session.User = user
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}
	return session, nil
}

// UpdateProfile pushes profile edits to the backend and re-saves the session
// with the returned user. The token is untouched: the edit is a profile
// change, not a credential change, and the cookie-bound record must agree
// with the backend immediately.
func (s *AuthService) UpdateProfile(ctx context.Context, sessionID string, fields map[string]any) (domainauth.Session, error) {
	if len(fields) == 0 {
		return domainauth.Session{}, apperrors.Validation("no profile fields to update")
	}
	if s.profiles == nil {
		return domainauth.Session{}, apperrors.Unavailable("profile editing is not configured")
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, err
	}

	user, err := s.profiles.UpdateProfile(ctx, session.Token, fields)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("update profile: %w", err)
	}

	session.User = user
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}
	return session, nil
}

// Logout removes a session. Logging out an unknown or empty session is a
// no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	s.boot.Invalidate()
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
