package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Invariant(t *testing.T) {
	user := User{ID: 1, Username: "alice"}

	t.Run("user without token rejected", func(t *testing.T) {
		_, err := NewSession("sid", "", user, time.Now().Add(time.Hour))
		assert.ErrorIs(t, err, ErrUserWithoutToken)
	})

	t.Run("user with token allowed", func(t *testing.T) {
		s, err := NewSession("sid", "abc123", user, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, s.Authenticated())
		assert.Equal(t, user, s.User)
	})

	t.Run("empty session allowed", func(t *testing.T) {
		s, err := NewSession("sid", "", User{}, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, s.Authenticated())
	})
}

func TestSession_IsAdmin(t *testing.T) {
	s := Session{Token: "t", User: User{ID: 2, Username: "root", IsAdmin: true}}
	assert.True(t, s.IsAdmin())

	s.User.IsAdmin = false
	assert.False(t, s.IsAdmin())
}

func TestUser_IsZero(t *testing.T) {
	assert.True(t, User{}.IsZero())
	assert.False(t, User{ID: 1}.IsZero())
	assert.False(t, User{Username: "bob"}.IsZero())
}
