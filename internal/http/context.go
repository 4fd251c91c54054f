package httpx

import (
	"context"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware use the same key.
type sessionKey struct{}

// WithSession returns a child context carrying the given session.
func WithSession(ctx context.Context, sess domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFrom returns the session from context and whether one is present.
// Guarded handlers can rely on presence; optional-auth handlers must check.
func SessionFrom(ctx context.Context) (domainauth.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(domainauth.Session)
	return sess, ok
}
