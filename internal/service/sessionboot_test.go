package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	mocks "github.com/wisherr/wisherr-ui/internal/mocks/auth"
)

func TestSessionBootstrap_ResolveSuccess(t *testing.T) {
	boot := NewSessionBootstrap(mocks.NewMockIdentityResolver())

	user, err := boot.Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "mockuser", user.Username)

	status := boot.Status()
	assert.Equal(t, BootResolved, status.Phase)
	assert.Equal(t, user, status.User)
}

func TestSessionBootstrap_EmptyTokenIsIdle(t *testing.T) {
	resolver := mocks.NewMockIdentityResolver()
	boot := NewSessionBootstrap(resolver)

	user, err := boot.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, user.IsZero())
	assert.Equal(t, BootIdle, boot.Status().Phase)

	// The resolver is never consulted without a credential.
	assert.Equal(t, 0, resolver.Calls())
}

func TestSessionBootstrap_ResolveFailure(t *testing.T) {
	resolver := mocks.NewMockIdentityResolver()
	resolver.MeFunc = func(context.Context, string) (domainauth.User, error) {
		return domainauth.User{}, errors.New("rejected")
	}
	boot := NewSessionBootstrap(resolver)

	_, err := boot.Resolve(context.Background(), "bad-token")
	require.Error(t, err)

	status := boot.Status()
	assert.Equal(t, BootFailed, status.Phase)
	assert.Error(t, status.Err)
	assert.True(t, status.User.IsZero())
}

func TestSessionBootstrap_Invalidate(t *testing.T) {
	boot := NewSessionBootstrap(mocks.NewMockIdentityResolver())

	_, err := boot.Resolve(context.Background(), "tok")
	require.NoError(t, err)

	boot.Invalidate()
	assert.Equal(t, BootIdle, boot.Status().Phase)
}

func TestSessionBootstrap_StaleResolutionDoesNotCommit(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once
	resolver := mocks.NewMockIdentityResolver()
	resolver.MeFunc = func(_ context.Context, token string) (domainauth.User, error) {
		if token == "slow-token" {
			once.Do(func() { close(firstStarted) })
			<-release
			return domainauth.User{ID: 1, Username: "stale"}, nil
		}
		return domainauth.User{ID: 2, Username: "fresh"}, nil
	}

	boot := NewSessionBootstrap(resolver)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = boot.Resolve(context.Background(), "slow-token")
	}()

	// Start the newer resolution after the slow one is in flight, then
	// finish it before releasing the slow one.
	<-firstStarted
	user, err := boot.Resolve(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.Equal(t, "fresh", user.Username)

	close(release)
	wg.Wait()

	// The slow completion arrived last but must not overwrite the newer one.
	status := boot.Status()
	assert.Equal(t, BootResolved, status.Phase)
	assert.Equal(t, "fresh", status.User.Username)
}

func TestSessionBootstrap_InvalidateBeatsInFlightResolve(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	resolver := mocks.NewMockIdentityResolver()
	resolver.MeFunc = func(context.Context, string) (domainauth.User, error) {
		close(started)
		<-release
		return domainauth.User{ID: 1, Username: "late"}, nil
	}

	boot := NewSessionBootstrap(resolver)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = boot.Resolve(context.Background(), "tok")
	}()

	<-started
	boot.Invalidate()
	close(release)
	wg.Wait()

	// A logout during resolution wins: the late profile never lands.
	assert.Equal(t, BootIdle, boot.Status().Phase)
	assert.True(t, boot.Status().User.IsZero())
}
