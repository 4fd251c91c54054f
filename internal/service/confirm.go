package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// ErrConfirmMismatch is returned when a resolution names a confirmation that
// is no longer the pending one.
var ErrConfirmMismatch = errors.New("confirmation is no longer pending")

// ConfirmServiceOptions groups dependencies for ConfirmService.
type ConfirmServiceOptions struct {
	Store ports.ConfirmStore
}

// ConfirmService manages the single pending confirmation per session. A new
// request replaces the old one, so a destructive action can only proceed
// when the user answers the exact prompt it raised.
type ConfirmService struct {
	store ports.ConfirmStore
}

// NewConfirmService constructs a new ConfirmService.
func NewConfirmService(opts ConfirmServiceOptions) *ConfirmService {
	return &ConfirmService{store: opts.Store}
}

// Request stores a new pending confirmation and returns it. Any previous
// pending confirmation for the session is replaced.
func (s *ConfirmService) Request(ctx context.Context, sessionID, title, message, action string) (notify.Confirm, error) {
	if action == "" {
		return notify.Confirm{}, errors.New("confirmation action is required")
	}

	c := notify.Confirm{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, sessionID, c); err != nil {
		return notify.Confirm{}, fmt.Errorf("store confirmation: %w", err)
	}
	return c, nil
}

// Pending returns the session's pending confirmation without consuming it.
func (s *ConfirmService) Pending(ctx context.Context, sessionID string) (notify.Confirm, bool, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if isNoConfirm(err) {
			return notify.Confirm{}, false, nil
		}
		return notify.Confirm{}, false, fmt.Errorf("get confirmation: %w", err)
	}
	return c, true, nil
}

// Accept consumes the pending confirmation when confirmID matches and
// returns it, carrying the action the caller must now perform. A mismatch
// means the prompt was superseded; the caller must not act.
func (s *ConfirmService) Accept(ctx context.Context, sessionID, confirmID string) (notify.Confirm, error) {
	c, err := s.store.Take(ctx, sessionID, confirmID)
	if err != nil {
		if isNoConfirm(err) {
			return notify.Confirm{}, ErrConfirmMismatch
		}
		return notify.Confirm{}, fmt.Errorf("consume confirmation: %w", err)
	}
	return c, nil
}

// Decline consumes the pending confirmation without acting on it. Declining
// a superseded or missing prompt is a no-op.
func (s *ConfirmService) Decline(ctx context.Context, sessionID, confirmID string) error {
	_, err := s.store.Take(ctx, sessionID, confirmID)
	if err != nil && !isNoConfirm(err) {
		return fmt.Errorf("consume confirmation: %w", err)
	}
	return nil
}

func isNoConfirm(err error) bool {
	return errors.Is(err, ports.ErrNoConfirm)
}
