package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

func TestRequireAuth_APIRequestGets401JSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/wishlists", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "unauthorized", body["error"])
}

func TestRequireAuth_BrowserNavigationRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/wishlists/5", nil)
	req.Header.Set("Accept", "text/html")

	handler := RequireAuth(env.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("protected handler must not run without a session")
	}))
	handler = BrowserDetection()(handler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fwishlists%2F5", rec.Header().Get("Location"))
}

func TestRequireAuth_ValidSessionPassesThrough(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	var got domainauth.Session
	handler := RequireAuth(env.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFrom(r.Context())
		require.True(t, ok)
		got = sess
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/wishlists", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.User.ID)
	assert.Equal(t, "bearer-token", got.Token)
}

func TestRequireAdmin_NonAdminAPIGets403(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	rec := env.do(t, http.MethodGet, "/api/admin/users", nil, cookie)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_NonAdminBrowserRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	handler := BrowserDetection()(RequireAdmin(env.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("admin handler must not run for a regular user")
	})))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Accept", "text/html")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login?redirect_uri=")
}

func TestRequireAdmin_AdminPassesThrough(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 1, Username: "root", IsAdmin: true})

	handler := RequireAdmin(env.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRedirectAuthenticated_SendsSignedInUsersToDashboard(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	handler := RedirectAuthenticated(env.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	// Without a session the login page renders normally.
	req = httptest.NewRequest(http.MethodGet, "/login", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      string
	}{
		{"empty", "", "/"},
		{"relative path", "/wishlists/5", "/wishlists/5"},
		{"with query", "/wishlists?scope=mine", "/wishlists?scope=mine"},
		{"absolute URL", "https://evil.example/phish", "/"},
		{"scheme relative", "//evil.example/phish", "/"},
		{"no leading slash", "wishlists", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirectPath(tt.candidate))
		})
	}
}

func TestCompression_GzipsJSONWhenAccepted(t *testing.T) {
	handler := Compression(CompressionConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/site-info", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
}

func TestCompression_SkipsWithoutAcceptEncoding(t *testing.T) {
	handler := Compression(CompressionConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/site-info", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestAcceptsGzip(t *testing.T) {
	assert.True(t, acceptsGzip("gzip"))
	assert.True(t, acceptsGzip("gzip, deflate, br"))
	assert.True(t, acceptsGzip("deflate, gzip;q=0.5"))
	assert.False(t, acceptsGzip(""))
	assert.False(t, acceptsGzip("deflate"))
	assert.False(t, acceptsGzip("gzip;q=0"))
}
