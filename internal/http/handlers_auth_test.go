package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

func sessionCookieFrom(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_SetsSessionCookieAndReturnsProfile(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)

	var body struct {
		User struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "mockuser", body.User.Username)
}

func TestLogin_BadCredentialsLeaveNoSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, sessionCookieFrom(rec))
	assert.Zero(t, env.sessions.Len())
}

func TestLoggedInSessionReachesProtectedRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)

	env.wishlistAPI.EXPECT().ListWishlistsWithRoles(gomock.Any(), "mock-token").Return(nil, nil)

	rec = env.do(t, http.MethodGet, "/api/wishlists", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_ClearsSessionAndCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})
	require.Equal(t, 1, env.sessions.Len())

	rec := env.do(t, http.MethodPost, "/api/auth/logout", nil, cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, env.sessions.Len())

	cleared := sessionCookieFrom(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestLogout_WithoutSessionIsHarmless(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus_ReportsAuthenticationState(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/auth/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Authenticated)

	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})
	rec = env.do(t, http.MethodGet, "/api/auth/status", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.True(t, body.Authenticated)
}

func TestStatus_StaleCookieIsClearedNotErrored(t *testing.T) {
	env := newTestEnv(t)
	stale := &http.Cookie{Name: SessionCookieName, Value: "no-such-session"}

	rec := env.do(t, http.MethodGet, "/api/auth/status", nil, stale)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Authenticated)

	cleared := sessionCookieFrom(rec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestRegister_CreatesAccountWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "secret",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, sessionCookieFrom(rec))
	assert.Zero(t, env.sessions.Len())

	var body struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rec, &body)
	assert.Positive(t, body.ID)
}

func TestRegister_ValidationErrorNamesField(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob",
		"email":    "",
		"password": "secret",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Field string `json:"field"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "email", body.Field)
}

func TestRefresh_RequiresSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/refresh", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_UpdatesSessionRecord(t *testing.T) {
	env := newTestEnv(t)
	user := domainauth.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	env.profileAPI.User = user
	cookie := env.signIn(t, user)

	rec := env.do(t, http.MethodPut, "/api/auth/profile", map[string]string{
		"theme": "dark",
	}, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		User struct {
			Username string `json:"username"`
			Theme    string `json:"theme"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "alice", body.User.Username)
	assert.Equal(t, "dark", body.User.Theme)

	// The session record carries the new profile with the same token.
	stored, err := env.sessions.Get(t.Context(), "test-session")
	require.NoError(t, err)
	assert.Equal(t, "dark", stored.User.Theme)
	assert.Equal(t, "bearer-token", stored.Token)
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/auth/profile", map[string]string{"theme": "dark"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_EmptyBodyIsRejected(t *testing.T) {
	env := newTestEnv(t)
	user := domainauth.User{ID: 7, Username: "alice"}
	env.profileAPI.User = user
	cookie := env.signIn(t, user)

	rec := env.do(t, http.MethodPut, "/api/auth/profile", map[string]string{}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "validation", body.Error)
}
