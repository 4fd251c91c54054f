package service

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// BootPhase is the observable state of the identity bootstrap.
type BootPhase string

const (
	// BootIdle means no credential is present.
	BootIdle BootPhase = "idle"
	// BootResolving means a profile lookup is in flight.
	BootResolving BootPhase = "resolving"
	// BootResolved means the profile lookup succeeded.
	BootResolved BootPhase = "resolved"
	// BootFailed means the profile lookup failed and the credential should
	// be treated as invalid.
	BootFailed BootPhase = "failed"
)

// BootStatus is a point-in-time snapshot of the bootstrap.
type BootStatus struct {
	Phase BootPhase
	User  domainauth.User
	Err   error
}

// SessionBootstrap resolves a bearer token into a user profile exactly once
// per credential change. Concurrent resolutions are serialized by a
// generation counter: only the most recently started resolution may commit,
// so a slow stale lookup can never overwrite the outcome of a newer one.
type SessionBootstrap struct {
	identities ports.IdentityResolver

	mu     sync.Mutex
	gen    uint64
	status BootStatus
}

// NewSessionBootstrap constructs a bootstrap around an identity resolver.
func NewSessionBootstrap(identities ports.IdentityResolver) *SessionBootstrap {
	return &SessionBootstrap{
		identities: identities,
		status:     BootStatus{Phase: BootIdle},
	}
}

// Resolve looks up the profile behind token. An empty token resets the
// bootstrap to idle and yields a zero user without touching the resolver.
func (b *SessionBootstrap) Resolve(ctx context.Context, token string) (domainauth.User, error) {
	if token == "" {
		b.mu.Lock()
		b.gen++
		b.status = BootStatus{Phase: BootIdle}
		b.mu.Unlock()
		return domainauth.User{}, nil
	}

	b.mu.Lock()
	b.gen++
	myGen := b.gen
	b.status = BootStatus{Phase: BootResolving}
	b.mu.Unlock()

	user, err := b.identities.Me(ctx, token)

	b.mu.Lock()
	defer b.mu.Unlock()

	// A newer resolution started while this one ran; its outcome wins.
	if b.gen != myGen {
		if err != nil {
			return domainauth.User{}, fmt.Errorf("resolve identity: %w", err)
		}
		return user, nil
	}

	if err != nil {
		b.status = BootStatus{Phase: BootFailed, Err: err}
		return domainauth.User{}, fmt.Errorf("resolve identity: %w", err)
	}

	b.status = BootStatus{Phase: BootResolved, User: user}
	return user, nil
}

// Invalidate resets the bootstrap to idle. Any in-flight resolution becomes
// stale and will not commit.
func (b *SessionBootstrap) Invalidate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.status = BootStatus{Phase: BootIdle}
}

// Status returns the current bootstrap snapshot.
func (b *SessionBootstrap) Status() BootStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}
