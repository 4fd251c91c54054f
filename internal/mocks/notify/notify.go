package notify

// Package notify contains in-memory test doubles for the notification ports.

import (
	"context"
	"sync"
	"time"

	domainnotify "github.com/wisherr/wisherr-ui/internal/domain/notify"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.FlashStore   = (*MemoryFlashStore)(nil)
	_ ports.ConfirmStore = (*MemoryConfirmStore)(nil)
)

// MemoryFlashStore is an in-memory toast queue store for tests.
type MemoryFlashStore struct {
	mu     sync.Mutex
	queues map[string][]domainnotify.Toast

	PushErr error
	ListErr error
}

// NewMemoryFlashStore creates an empty in-memory flash store.
func NewMemoryFlashStore() *MemoryFlashStore {
	return &MemoryFlashStore{queues: make(map[string][]domainnotify.Toast)}
}

func (s *MemoryFlashStore) Push(_ context.Context, sessionID string, t domainnotify.Toast) error {
	if s.PushErr != nil {
		return s.PushErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[sessionID] = append(s.queues[sessionID], t)
	return nil
}

func (s *MemoryFlashStore) List(_ context.Context, sessionID string) ([]domainnotify.Toast, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	live := s.queues[sessionID][:0:0]
	for _, t := range s.queues[sessionID] {
		if !t.Expired(now) {
			live = append(live, t)
		}
	}
	s.queues[sessionID] = live

	out := make([]domainnotify.Toast, len(live))
	copy(out, live)
	return out, nil
}

func (s *MemoryFlashStore) Dismiss(_ context.Context, sessionID, toastID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[sessionID]
	for i, t := range queue {
		if t.ID == toastID {
			s.queues[sessionID] = append(queue[:i:i], queue[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryFlashStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queues, sessionID)
	return nil
}

// MemoryConfirmStore is an in-memory single-slot confirm store for tests.
type MemoryConfirmStore struct {
	mu      sync.Mutex
	pending map[string]domainnotify.Confirm
}

// NewMemoryConfirmStore creates an empty in-memory confirm store.
func NewMemoryConfirmStore() *MemoryConfirmStore {
	return &MemoryConfirmStore{pending: make(map[string]domainnotify.Confirm)}
}

func (s *MemoryConfirmStore) Put(_ context.Context, sessionID string, c domainnotify.Confirm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[sessionID] = c
	return nil
}

func (s *MemoryConfirmStore) Get(_ context.Context, sessionID string) (domainnotify.Confirm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.pending[sessionID]
	if !ok {
		return domainnotify.Confirm{}, ports.ErrNoConfirm
	}
	return c, nil
}

func (s *MemoryConfirmStore) Take(_ context.Context, sessionID, confirmID string) (domainnotify.Confirm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.pending[sessionID]
	if !ok || c.ID != confirmID {
		return domainnotify.Confirm{}, ports.ErrNoConfirm
	}
	delete(s.pending, sessionID)
	return c, nil
}
