package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// User is the resolved profile of the authenticated user, as returned by
// the backend's GET /auth/me. Only fields the gateway logic depends on are
// modeled; everything else stays server-side.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
	Locale   string `json:"locale,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// IsZero reports whether the profile is unset.
func (u User) IsZero() bool { return u.ID == 0 && u.Username == "" }

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier; Token is the backend bearer credential
// every outbound API call is signed with. Token and User live in one record
// so they are written and cleared atomically: there is never a state where a
// profile survives its credential.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrUserWithoutToken is returned when constructing a session that carries a
// resolved profile but no bearer token.
var ErrUserWithoutToken = errors.New("session user requires a token")

// NewSession builds a session, enforcing the token/user coupling invariant.
func NewSession(id, token string, user User, expiresAt time.Time) (Session, error) {
	if !user.IsZero() && token == "" {
		return Session{}, ErrUserWithoutToken
	}
	return Session{ID: id, Token: token, User: user, ExpiresAt: expiresAt}, nil
}

// Authenticated reports whether the session carries a usable credential.
func (s Session) Authenticated() bool { return s.Token != "" }

// IsAdmin reports whether the session's user holds the global admin flag.
func (s Session) IsAdmin() bool { return s.User.IsAdmin }
