package wisherr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL, Client: srv.Client()})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "  "})
	require.Error(t, err)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://backend:9000/api/"})
	require.NoError(t, err)
	assert.Equal(t, "http://backend:9000/api", client.baseURL)
}

func TestClient_BearerAttachedPerRequest(t *testing.T) {
	var seen []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "alice", "email": "alice@example.com",
		})
	}))

	_, err := client.Me(context.Background(), "token-one")
	require.NoError(t, err)
	_, err = client.Me(context.Background(), "token-two")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer token-one", seen[0])
	assert.Equal(t, "Bearer token-two", seen[1])
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"site_title": "Wisherr", "allow_registration": true,
		})
	}))

	info, err := client.SiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Wisherr", info.SiteTitle)
	assert.True(t, info.AllowRegistration)
}

func TestClient_APIErrorCarriesDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "title already taken"})
	}))

	_, err := client.Me(context.Background(), "tok")
	require.Error(t, err)

	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.Contains(t, err.Error(), "title already taken")
}

func TestClient_APIErrorFallsBackToRawBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))

	_, err := client.Me(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestClient_IsAuthError(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		assert.True(t, IsAuthError(&APIError{StatusCode: code}))
	}
	assert.False(t, IsAuthError(&APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, IsAuthError(context.Canceled))
}

func TestClient_MutationsFireOnce(t *testing.T) {
	var calls atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.DeleteWishlist(context.Background(), "tok", 42)
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	}))

	token, err := client.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestClient_LoginRejectsEmptyCredentials(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://backend:9000/api"})
	require.NoError(t, err)

	_, err = client.Login(context.Background(), "", "pw")
	require.Error(t, err)
	_, err = client.Login(context.Background(), "alice", "")
	require.Error(t, err)
}

func TestClient_ScrapeValidatesURL(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://backend:9000/api"})
	require.NoError(t, err)

	_, err = client.Scrape(context.Background(), "tok", "not a url")
	require.Error(t, err)
}
