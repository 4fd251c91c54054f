package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// FlashServiceOptions groups dependencies for FlashService.
type FlashServiceOptions struct {
	Store  ports.FlashStore
	Logger *slog.Logger
}

// FlashService manages the per-session toast queue.
type FlashService struct {
	store  ports.FlashStore
	logger *slog.Logger
}

// NewFlashService constructs a new FlashService.
func NewFlashService(opts FlashServiceOptions) *FlashService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashService{store: opts.Store, logger: logger}
}

// Push queues a toast of the given type for the session.
func (s *FlashService) Push(ctx context.Context, sessionID string, kind notify.ToastType, message string) (notify.Toast, error) {
	t := notify.NewToast(uuid.NewString(), kind, message)
	if err := s.store.Push(ctx, sessionID, t); err != nil {
		return notify.Toast{}, fmt.Errorf("push toast: %w", err)
	}
	return t, nil
}

// Success queues a success toast. A queue failure is logged and swallowed:
// the underlying operation already succeeded, and losing its toast must not
// turn it into an error.
func (s *FlashService) Success(ctx context.Context, sessionID, message string) {
	if _, err := s.Push(ctx, sessionID, notify.ToastSuccess, message); err != nil {
		s.logger.Warn("dropping success toast", "error", err)
	}
}

// Error queues a persistent error toast. Same soft-fail rule as Success: the
// caller already has the real error to report.
func (s *FlashService) Error(ctx context.Context, sessionID, message string) {
	if _, err := s.Push(ctx, sessionID, notify.ToastError, message); err != nil {
		s.logger.Warn("dropping error toast", "error", err)
	}
}

// Warning queues a warning toast.
func (s *FlashService) Warning(ctx context.Context, sessionID, message string) {
	if _, err := s.Push(ctx, sessionID, notify.ToastWarning, message); err != nil {
		s.logger.Warn("dropping warning toast", "error", err)
	}
}

// Info queues an info toast.
func (s *FlashService) Info(ctx context.Context, sessionID, message string) {
	if _, err := s.Push(ctx, sessionID, notify.ToastInfo, message); err != nil {
		s.logger.Warn("dropping info toast", "error", err)
	}
}

// List returns the session's live toasts in insertion order.
func (s *FlashService) List(ctx context.Context, sessionID string) ([]notify.Toast, error) {
	toasts, err := s.store.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list toasts: %w", err)
	}
	return toasts, nil
}

// Dismiss removes one toast by id.
func (s *FlashService) Dismiss(ctx context.Context, sessionID, toastID string) error {
	if err := s.store.Dismiss(ctx, sessionID, toastID); err != nil {
		return fmt.Errorf("dismiss toast: %w", err)
	}
	return nil
}

// Clear drops the session's entire queue, typically at logout.
func (s *FlashService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear toasts: %w", err)
	}
	return nil
}
