package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wisherr/wisherr-ui/internal/domain/notify"
)

// flashTTL bounds how long an unread toast queue lives. Error toasts never
// auto-close, but an abandoned session should not hoard its queue forever.
const flashTTL = 24 * time.Hour

// FlashStore keeps each session's toast queue as a Redis list, preserving
// insertion order.
type FlashStore struct {
	client redis.UniversalClient
	prefix string
}

// NewFlashStore creates a toast queue store with the default key prefix.
func NewFlashStore(client redis.UniversalClient) *FlashStore {
	return &FlashStore{client: client, prefix: "flash:"}
}

// Push appends a toast to the session's queue.
func (s *FlashStore) Push(ctx context.Context, sessionID string, t notify.Toast) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if t.ID == "" {
		return errors.New("toast ID cannot be empty")
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}

	key := s.prefix + sessionID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, flashTTL)
	if _, pipeErr := pipe.Exec(ctx); pipeErr != nil {
		return fmt.Errorf("push toast: %w", pipeErr)
	}
	return nil
}

// List returns the session's live toasts in insertion order. Entries past
// their auto-close window are pruned as a side effect; error toasts stay
// until dismissed.
func (s *FlashStore) List(ctx context.Context, sessionID string) ([]notify.Toast, error) {
	if sessionID == "" {
		return nil, nil
	}

	key := s.prefix + sessionID
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("list toasts: %w", err)
	}

	now := time.Now()
	live := make([]notify.Toast, 0, len(raw))
	var stale []string
	for _, entry := range raw {
		var t notify.Toast
		if unmarshalErr := json.Unmarshal([]byte(entry), &t); unmarshalErr != nil {
			stale = append(stale, entry)
			continue
		}
		if t.Expired(now) {
			stale = append(stale, entry)
			continue
		}
		live = append(live, t)
	}

	for _, entry := range stale {
		if remErr := s.client.LRem(ctx, key, 1, entry).Err(); remErr != nil {
			return nil, fmt.Errorf("prune toast: %w", remErr)
		}
	}

	return live, nil
}

// Dismiss removes the toast with the given id. Dismissing an unknown id is
// a no-op: the toast may have already expired out of the queue.
func (s *FlashStore) Dismiss(ctx context.Context, sessionID, toastID string) error {
	if sessionID == "" || toastID == "" {
		return nil
	}

	key := s.prefix + sessionID
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("dismiss toast: %w", err)
	}

	for _, entry := range raw {
		var t notify.Toast
		if json.Unmarshal([]byte(entry), &t) != nil {
			continue
		}
		if t.ID == toastID {
			return s.client.LRem(ctx, key, 1, entry).Err()
		}
	}
	return nil
}

// Clear drops the session's entire toast queue.
func (s *FlashStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
