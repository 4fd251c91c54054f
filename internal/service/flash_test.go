package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
	mocknotify "github.com/wisherr/wisherr-ui/internal/mocks/notify"
)

func TestFlashService_PushKinds(t *testing.T) {
	store := mocknotify.NewMemoryFlashStore()
	service := NewFlashService(FlashServiceOptions{Store: store})
	ctx := context.Background()

	service.Success(ctx, "sess-1", "saved")
	service.Error(ctx, "sess-1", "failed")
	service.Warning(ctx, "sess-1", "careful")
	service.Info(ctx, "sess-1", "fyi")

	toasts, err := service.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, toasts, 4)

	assert.Equal(t, notify.ToastSuccess, toasts[0].Type)
	assert.Equal(t, notify.ToastError, toasts[1].Type)
	assert.Equal(t, notify.ToastWarning, toasts[2].Type)
	assert.Equal(t, notify.ToastInfo, toasts[3].Type)

	// Only the error toast persists past auto-close.
	assert.True(t, toasts[0].AutoClose)
	assert.False(t, toasts[1].AutoClose)
}

func TestFlashService_StoreFailureIsSoft(t *testing.T) {
	store := mocknotify.NewMemoryFlashStore()
	store.PushErr = errors.New("redis down")
	service := NewFlashService(FlashServiceOptions{Store: store})

	// Convenience pushes swallow store failures.
	service.Success(context.Background(), "sess-1", "saved")

	// The explicit Push surfaces them.
	_, err := service.Push(context.Background(), "sess-1", notify.ToastInfo, "m")
	require.Error(t, err)
}

func TestFlashService_DismissAndClear(t *testing.T) {
	store := mocknotify.NewMemoryFlashStore()
	service := NewFlashService(FlashServiceOptions{Store: store})
	ctx := context.Background()

	first, err := service.Push(ctx, "sess-1", notify.ToastError, "one")
	require.NoError(t, err)
	_, err = service.Push(ctx, "sess-1", notify.ToastError, "two")
	require.NoError(t, err)

	require.NoError(t, service.Dismiss(ctx, "sess-1", first.ID))

	toasts, err := service.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, toasts, 1)
	assert.Equal(t, "two", toasts[0].Message)

	require.NoError(t, service.Clear(ctx, "sess-1"))

	toasts, err = service.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, toasts)
}
