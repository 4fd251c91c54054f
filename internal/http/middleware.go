package httpx

import (
	"compress/gzip"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
)

var (
	errUnauthenticated = apperrors.Unauthorized("authentication required")
	errNotAdmin        = apperrors.Forbidden("admin access required")
)

// SessionResolver looks up a live session by its cookie value.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (domainauth.Session, error)
}

// SessionCookieName is the HttpOnly cookie carrying the opaque session ID.
const SessionCookieName = "session_id"

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that classifies each request as a
// browser navigation or an API call, so guards can choose between a redirect
// and a JSON error.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if val, ok := r.Context().Value(browserRequestKey{}).(bool); ok {
		return val
	}
	return isBrowserRequest(r)
}

// isBrowserRequest classifies a request. API routes and explicit JSON
// accepts are API calls; everything that prefers text/html is a navigation.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}

	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// sessionFromRequest resolves the session from the request cookie. A
// missing cookie or a dead session both come back as not-present.
func sessionFromRequest(r *http.Request, resolver SessionResolver) (domainauth.Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return domainauth.Session{}, false
	}

	sess, err := resolver.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return domainauth.Session{}, false
	}
	return sess, true
}

// RequireAuth returns a middleware guarding protected routes. Browser
// navigations without a session are sent to the login page with a 303 so
// the protected URL never lands in history as a success; API calls get a
// 401 JSON body.
func RequireAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessionFromRequest(r, resolver)
			if !ok {
				if IsBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, errUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// RequireAdmin returns a middleware guarding admin routes. Non-admin
// browser navigations go back to the login page rather than a dedicated
// denial page; API calls get 401/403 JSON.
func RequireAdmin(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessionFromRequest(r, resolver)
			if !ok {
				if IsBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, errUnauthenticated)
				return
			}

			if !sess.IsAdmin() {
				if IsBrowserRequest(r) {
					redirectToLogin(w, r)
					return
				}
				WriteError(w, errNotAdmin)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// OptionalAuth attaches the session to context when one exists and lets the
// request through either way. Used on routes whose response varies by
// authentication but is available to everyone.
func OptionalAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, ok := sessionFromRequest(r, resolver); ok {
				r = r.WithContext(WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectAuthenticated sends already-authenticated users away from the
// login and register pages to the dashboard.
func RedirectAuthenticated(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessionFromRequest(r, resolver); ok {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectPath := safeRedirectPath(r.URL.RequestURI())
	loginURL := "/login?redirect_uri=" + url.QueryEscape(redirectPath)
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// safeRedirectPath ensures the candidate is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}

// CompressionConfig holds configuration for the compression middleware.
type CompressionConfig struct {
	Level  int
	Logger *slog.Logger
}

// Compression returns a middleware that gzips JSON and text responses when
// the client accepts gzip. Writers are pooled per configured level.
func Compression(cfg CompressionConfig) func(http.Handler) http.Handler {
	if cfg.Level < gzip.BestSpeed || cfg.Level > gzip.BestCompression {
		cfg.Level = gzip.DefaultCompression
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	pool := &sync.Pool{
		New: func() any {
			w, err := gzip.NewWriterLevel(nil, cfg.Level)
			if err != nil {
				return gzip.NewWriter(nil)
			}
			return w
		},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")
			gzw := &gzipResponseWriter{ResponseWriter: w, pool: pool}
			next.ServeHTTP(gzw, r)

			if gzw.gz != nil {
				if err := gzw.gz.Close(); err != nil {
					cfg.Logger.ErrorContext(r.Context(), "closing gzip writer failed", "error", err)
				}
				gzw.gz.Reset(nil)
				pool.Put(gzw.gz)
			}
		})
	}
}

// acceptsGzip checks the Accept-Encoding header, honoring an explicit q=0.
func acceptsGzip(acceptEncoding string) bool {
	for _, part := range strings.Split(acceptEncoding, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		encoding, params, _ := strings.Cut(part, ";")
		if strings.TrimSpace(encoding) != "gzip" {
			continue
		}
		params = strings.ReplaceAll(params, " ", "")
		if params == "q=0" || strings.HasPrefix(params, "q=0.0") {
			return false
		}
		return true
	}
	return false
}

var compressibleTypes = map[string]bool{
	"application/json": true,
	"text/html":        true,
	"text/plain":       true,
	"text/css":         true,
	"text/javascript":  true,
	"image/svg+xml":    true,
}

func isCompressibleContentType(contentType string) bool {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return compressibleTypes[strings.TrimSpace(strings.ToLower(contentType))]
}

// gzipResponseWriter decides whether to compress at WriteHeader time based
// on status and content type.
type gzipResponseWriter struct {
	http.ResponseWriter
	pool          *sync.Pool
	gz            *gzip.Writer
	headerWritten bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.headerWritten {
		return
	}
	w.headerWritten = true

	skip := statusCode < 200 ||
		statusCode == http.StatusNoContent ||
		statusCode == http.StatusNotModified ||
		w.Header().Get("Content-Encoding") != "" ||
		!isCompressibleContentType(w.Header().Get("Content-Type"))
	if !skip {
		w.gz = w.pool.Get().(*gzip.Writer)
		w.gz.Reset(w.ResponseWriter)
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}

	if w.gz != nil {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipResponseWriter) Flush() {
	if w.gz != nil {
		_ = w.gz.Flush()
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
