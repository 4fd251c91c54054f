package httpx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
	"github.com/wisherr/wisherr-ui/internal/service"
)

var (
	errMissingOAuthParams = apperrors.Validation("missing oauth parameters")
	errOAuthStateMismatch = apperrors.Unauthorized("oauth state mismatch")
)

// AuthHandlers provides HTTP handlers for login, registration, session
// status, and the OIDC flow.
type AuthHandlers struct {
	Svc          *service.AuthService
	Flash        *service.FlashService
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
	Locale   string `json:"locale,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

func userToPayload(u domainauth.User) userPayload {
	return userPayload{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		Locale:   u.Locale,
		Theme:    u.Theme,
	}
}

// Login handles POST /api/auth/login. Credentials are exchanged for a
// backend token and a session cookie; the resolved profile comes back in the
// response so the frontend can render without a second round trip.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, r, sess)
	WriteJSON(w, http.StatusOK, map[string]any{
		"user":       userToPayload(sess.User),
		"expires_at": sess.ExpiresAt,
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register. Registration never signs the
// user in; the frontend follows up with a login call.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.Svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{"id": id})
}

// Logout handles POST /api/auth/logout. The server-side session, its toast
// queue, and the cookie are all cleared; logging out twice is harmless.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if h.Flash != nil {
			if clearErr := h.Flash.Clear(r.Context(), cookie.Value); clearErr != nil {
				h.logger().WarnContext(r.Context(), "clearing toasts on logout failed", "error", clearErr)
			}
		}
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	h.clearCookie(w, r, SessionCookieName)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

// Status handles GET /api/auth/status. Always 200: the body says whether a
// session exists so the frontend can bootstrap without error handling.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false, "sso_enabled": h.Svc.SSOEnabled()})
		return
	}

	sess, err := h.Svc.GetSession(r.Context(), cookie.Value)
	if err != nil {
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false, "sso_enabled": h.Svc.SSOEnabled()})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"sso_enabled":   h.Svc.SSOEnabled(),
		"user":          userToPayload(sess.User),
		"expires_at":    sess.ExpiresAt,
	})
}

// Refresh handles POST /api/auth/refresh. The profile is re-resolved from
// the backend; a token that no longer resolves destroys the session.
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteError(w, errUnauthenticated)
		return
	}

	sess, err := h.Svc.RefreshProfile(r.Context(), cookie.Value)
	if err != nil {
		h.clearCookie(w, r, SessionCookieName)
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"user":       userToPayload(sess.User),
		"expires_at": sess.ExpiresAt,
	})
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Locale   *string `json:"locale"`
	Theme    *string `json:"theme"`
}

// fields returns only the keys the client actually sent, so an omitted
// field is never overwritten with a zero value.
func (req updateProfileRequest) fields() map[string]any {
	out := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	set("username", req.Username)
	set("email", req.Email)
	set("password", req.Password)
	set("locale", req.Locale)
	set("theme", req.Theme)
	return out
}

// UpdateProfile handles PUT /api/auth/profile. The backend applies the edit
// and the session record picks up the returned user.
func (h *AuthHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Svc.UpdateProfile(r.Context(), sess.ID, req.fields())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"user":       userToPayload(updated.User),
		"expires_at": updated.ExpiresAt,
	})
}

// SSOLogin handles GET /auth/sso/login. It starts the OIDC flow, stashes
// state and nonce in short-lived cookies, and redirects to the provider.
func (h *AuthHandlers) SSOLogin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	authURL, state, nonce, err := h.Svc.BeginSSOLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{State: state, Nonce: nonce, RedirectURI: redirectURI})
	http.Redirect(w, r, authURL, http.StatusFound)
}

// SSOCallback handles GET /auth/sso/callback. State is verified against the
// cookie before the code exchange; success establishes a session exactly
// like a credential login and redirects to the stashed destination.
func (h *AuthHandlers) SSOCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		WriteError(w, errMissingOAuthParams)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, errOAuthStateMismatch)
		return
	}
	nonceCookie, err := r.Cookie("oauth_nonce")
	if err != nil {
		WriteError(w, errMissingOAuthParams)
		return
	}

	sess, err := h.Svc.CompleteSSOLogin(r.Context(), ports.ExchangeInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, r, sess)
	h.clearCookie(w, r, "oauth_state")
	h.clearCookie(w, r, "oauth_nonce")

	http.Redirect(w, r, h.postLoginRedirect(w, r), http.StatusFound)
}

// isSecureRequest checks TLS directly or via the reverse proxy header.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
	})
}

// clearCookie mirrors the attributes used when setting cookies so deletion
// works across browsers.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

const oauthCookieMaxAge = 600

func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	secure := isSecureRequest(r)
	for name, value := range map[string]string{
		"oauth_state":         p.State,
		"oauth_nonce":         p.Nonce,
		"post_login_redirect": p.RedirectURI,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   oauthCookieMaxAge,
		})
	}
}

// postLoginRedirect returns the stashed destination and clears its cookie.
func (h *AuthHandlers) postLoginRedirect(w http.ResponseWriter, r *http.Request) string {
	redirectURI := "/"
	if cookie, err := r.Cookie("post_login_redirect"); err == nil {
		candidate, decodeErr := url.QueryUnescape(cookie.Value)
		if decodeErr == nil {
			redirectURI = safeRedirectPath(candidate)
		}
		h.clearCookie(w, r, "post_login_redirect")
	}
	return redirectURI
}
