package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

func testConfirm(id, action string) notify.Confirm {
	return notify.Confirm{
		ID:        id,
		Title:     "Delete wishlist",
		Message:   "This cannot be undone.",
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
}

func TestConfirmStore_PutAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	pending := testConfirm("confirm-1", "wishlist.delete:7")
	require.NoError(t, store.Put(ctx, "sess-1", pending))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)
	assert.Equal(t, pending.Action, got.Action)

	// Get does not consume the slot.
	_, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
}

func TestConfirmStore_GetEmpty(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)

	_, err := store.Get(context.Background(), "sess-empty")
	assert.ErrorIs(t, err, ports.ErrNoConfirm)
}

func TestConfirmStore_PutOverwrites(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sess-2", testConfirm("first", "item.delete:1")))
	require.NoError(t, store.Put(ctx, "sess-2", testConfirm("second", "item.delete:2")))

	got, err := store.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID)
}

func TestConfirmStore_TakeConsumesMatchingID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sess-3", testConfirm("confirm-3", "group.delete:9")))

	got, err := store.Take(ctx, "sess-3", "confirm-3")
	require.NoError(t, err)
	assert.Equal(t, "group.delete:9", got.Action)

	// The slot is now empty.
	_, err = store.Get(ctx, "sess-3")
	assert.ErrorIs(t, err, ports.ErrNoConfirm)
}

func TestConfirmStore_TakeMismatchLeavesSlot(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sess-4", testConfirm("current", "share.delete:3")))

	// A stale prompt id must not consume the newer pending entry.
	_, err := store.Take(ctx, "sess-4", "stale")
	assert.ErrorIs(t, err, ports.ErrNoConfirm)

	got, err := store.Get(ctx, "sess-4")
	require.NoError(t, err)
	assert.Equal(t, "current", got.ID)
}

func TestConfirmStore_SlotsAreIsolatedPerSession(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sess-a", testConfirm("a", "wishlist.delete:1")))
	require.NoError(t, store.Put(ctx, "sess-b", testConfirm("b", "wishlist.delete:2")))

	got, err := store.Take(ctx, "sess-a", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	got, err = store.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
}

func TestConfirmStore_PutValidation(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewConfirmStore(client)
	ctx := context.Background()

	require.Error(t, store.Put(ctx, "", testConfirm("x", "a")))
	require.Error(t, store.Put(ctx, "sess", notify.Confirm{Title: "t"}))
}
