package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// confirmTTL bounds how long an unanswered confirmation stays pending.
const confirmTTL = time.Hour

// ConfirmStore keeps at most one pending confirmation per session under a
// single key. Put overwrites whatever was pending.
type ConfirmStore struct {
	client redis.UniversalClient
	prefix string
}

// NewConfirmStore creates a confirm store with the default key prefix.
func NewConfirmStore(client redis.UniversalClient) *ConfirmStore {
	return &ConfirmStore{client: client, prefix: "confirm:"}
}

// Put stores c as the session's pending confirmation, replacing any
// previous entry.
func (s *ConfirmStore) Put(ctx context.Context, sessionID string, c notify.Confirm) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if c.ID == "" {
		return errors.New("confirm ID cannot be empty")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal confirm: %w", err)
	}
	return s.client.Set(ctx, s.prefix+sessionID, data, confirmTTL).Err()
}

// Get returns the session's pending confirmation without consuming it.
func (s *ConfirmStore) Get(ctx context.Context, sessionID string) (notify.Confirm, error) {
	if sessionID == "" {
		return notify.Confirm{}, ports.ErrNoConfirm
	}

	data, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notify.Confirm{}, ports.ErrNoConfirm
		}
		return notify.Confirm{}, fmt.Errorf("redis get: %w", err)
	}

	var c notify.Confirm
	if unmarshalErr := json.Unmarshal([]byte(data), &c); unmarshalErr != nil {
		return notify.Confirm{}, fmt.Errorf("unmarshal confirm: %w", unmarshalErr)
	}
	return c, nil
}

// Take consumes the pending confirmation when its id matches confirmID. A
// mismatch means the slot was overwritten since the prompt was issued; the
// slot is left untouched and ports.ErrNoConfirm is returned.
func (s *ConfirmStore) Take(ctx context.Context, sessionID, confirmID string) (notify.Confirm, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return notify.Confirm{}, err
	}
	if c.ID != confirmID {
		return notify.Confirm{}, ports.ErrNoConfirm
	}

	if delErr := s.client.Del(ctx, s.prefix+sessionID).Err(); delErr != nil {
		return notify.Confirm{}, fmt.Errorf("consume confirm: %w", delErr)
	}
	return c, nil
}
