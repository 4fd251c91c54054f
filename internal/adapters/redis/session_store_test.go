package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func testSession(t *testing.T, id string) domainauth.Session {
	t.Helper()

	sess, err := domainauth.NewSession(id, "bearer-token", domainauth.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
	}, time.Now().Add(30*time.Minute))
	require.NoError(t, err)
	return sess
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession(t, "test-session-1")

	err := store.Save(ctx, session)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.Token, retrieved.Token)
	assert.Equal(t, session.User, retrieved.User)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testSession(t, "test-session-delete")

	require.NoError(t, store.Save(ctx, session))

	_, err := store.Get(ctx, "test-session-delete")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "test-session-delete"))

	_, err = store.Get(ctx, "test-session-delete")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_DeleteIsIdempotent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "never-existed"))
	require.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_TTLExpiration(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session, err := domainauth.NewSession("test-session-ttl", "tok", domainauth.User{ID: 1, Username: "a"},
		time.Now().Add(100*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, session))

	time.Sleep(200 * time.Millisecond)

	_, err = store.Get(ctx, "test-session-ttl")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	session := testSession(t, "prefix-test")

	require.NoError(t, store.Save(ctx, session))

	exists := client.Exists(ctx, "test-prefix:prefix-test").Val()
	assert.Equal(t, int64(1), exists)

	retrieved, err := store.Get(ctx, "prefix-test")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
}

func TestSessionStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	session := testSession(t, "placeholder")
	session.ID = ""

	err := store.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session ID cannot be empty")
}

func TestSessionStore_SaveExpiredSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)

	session := testSession(t, "expired-session")
	session.ExpiresAt = time.Now().Add(-1 * time.Hour)

	err := store.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}

func TestSessionStore_AnonymousSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewSessionStore(client)
	ctx := context.Background()

	session, err := domainauth.NewSession("anon-session", "", domainauth.User{},
		time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "anon-session")
	require.NoError(t, err)
	assert.False(t, retrieved.Authenticated())
	assert.True(t, retrieved.User.IsZero())
}
