package ports

import (
	"context"
	"errors"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
)

// ErrNoConfirm is returned by ConfirmStore when no confirmation is pending,
// or when the pending one does not match the requested id.
var ErrNoConfirm = errors.New("no matching pending confirmation")

// FlashStore persists per-session toast queues in insertion order.
type FlashStore interface {
	Push(ctx context.Context, sessionID string, t notify.Toast) error
	// List returns live toasts, pruning expired auto-close entries.
	List(ctx context.Context, sessionID string) ([]notify.Toast, error)
	Dismiss(ctx context.Context, sessionID, toastID string) error
	Clear(ctx context.Context, sessionID string) error
}

// ConfirmStore holds the single pending confirmation per session.
// Put overwrites any pending entry; Take consumes the slot only when the
// pending entry matches the given id.
type ConfirmStore interface {
	Put(ctx context.Context, sessionID string, c notify.Confirm) error
	Get(ctx context.Context, sessionID string) (notify.Confirm, error)
	Take(ctx context.Context, sessionID, confirmID string) (notify.Confirm, error)
}
