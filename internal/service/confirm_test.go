package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocknotify "github.com/wisherr/wisherr-ui/internal/mocks/notify"
)

func TestConfirmService_RequestAndAccept(t *testing.T) {
	service := NewConfirmService(ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()})
	ctx := context.Background()

	c, err := service.Request(ctx, "sess-1", "Delete wishlist", "This cannot be undone.", "wishlist.delete:7")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	pending, ok, err := service.Pending(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, c.ID, pending.ID)

	accepted, err := service.Accept(ctx, "sess-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, "wishlist.delete:7", accepted.Action)

	// Accepting consumed the slot.
	_, ok, err = service.Pending(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfirmService_RequestRequiresAction(t *testing.T) {
	service := NewConfirmService(ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()})

	_, err := service.Request(context.Background(), "sess-1", "t", "m", "")
	require.Error(t, err)
}

func TestConfirmService_SecondRequestReplacesFirst(t *testing.T) {
	service := NewConfirmService(ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()})
	ctx := context.Background()

	first, err := service.Request(ctx, "sess-1", "Delete A", "", "wishlist.delete:1")
	require.NoError(t, err)
	second, err := service.Request(ctx, "sess-1", "Delete B", "", "wishlist.delete:2")
	require.NoError(t, err)

	// The first prompt is gone; accepting it must not run its action.
	_, err = service.Accept(ctx, "sess-1", first.ID)
	assert.ErrorIs(t, err, ErrConfirmMismatch)

	accepted, err := service.Accept(ctx, "sess-1", second.ID)
	require.NoError(t, err)
	assert.Equal(t, "wishlist.delete:2", accepted.Action)
}

func TestConfirmService_AcceptWithoutPending(t *testing.T) {
	service := NewConfirmService(ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()})

	_, err := service.Accept(context.Background(), "sess-1", "ghost")
	assert.ErrorIs(t, err, ErrConfirmMismatch)
}

func TestConfirmService_Decline(t *testing.T) {
	service := NewConfirmService(ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()})
	ctx := context.Background()

	c, err := service.Request(ctx, "sess-1", "Delete", "", "item.delete:3")
	require.NoError(t, err)

	require.NoError(t, service.Decline(ctx, "sess-1", c.ID))

	// Declining cleared the slot; the action can no longer be confirmed.
	_, err = service.Accept(ctx, "sess-1", c.ID)
	assert.ErrorIs(t, err, ErrConfirmMismatch)

	// Declining an already-gone prompt is a no-op.
	require.NoError(t, service.Decline(ctx, "sess-1", c.ID))
}
