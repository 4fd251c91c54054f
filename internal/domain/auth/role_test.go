package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRole_AdminOverridesEverything(t *testing.T) {
	admin := User{ID: 7, Username: "root", IsAdmin: true}

	// Admin wins regardless of ownership or granted role.
	for _, granted := range []string{"", "none", "viewer", "editor", "owner"} {
		assert.Equal(t, RoleAdmin, ResolveRole(admin, 7, granted), "granted=%q owned", granted)
		assert.Equal(t, RoleAdmin, ResolveRole(admin, 99, granted), "granted=%q not owned", granted)
	}
}

func TestResolveRole_OwnershipBeatsGrantedRole(t *testing.T) {
	owner := User{ID: 3, Username: "alice"}

	// A stale grant on the user's own list must not demote them.
	for _, granted := range []string{"", "viewer", "editor", "none"} {
		assert.Equal(t, RoleOwner, ResolveRole(owner, 3, granted), "granted=%q", granted)
	}
}

func TestResolveRole_GrantedRole(t *testing.T) {
	user := User{ID: 5, Username: "bob"}

	assert.Equal(t, RoleEditor, ResolveRole(user, 9, "editor"))
	assert.Equal(t, RoleViewer, ResolveRole(user, 9, "viewer"))
	assert.Equal(t, RoleNone, ResolveRole(user, 9, "none"))
	assert.Equal(t, RoleNone, ResolveRole(user, 9, ""))
}

func TestResolveRole_UnknownGrantDegradesToNone(t *testing.T) {
	user := User{ID: 5, Username: "bob"}
	assert.Equal(t, RoleNone, ResolveRole(user, 9, "superuser"))
}

func TestResolveRole_ZeroUser(t *testing.T) {
	assert.Equal(t, RoleNone, ResolveRole(User{}, 9, "editor"))
}

func TestRole_CanEdit(t *testing.T) {
	assert.True(t, RoleAdmin.CanEdit())
	assert.True(t, RoleOwner.CanEdit())
	assert.True(t, RoleEditor.CanEdit())
	assert.False(t, RoleViewer.CanEdit())
	assert.False(t, RoleNone.CanEdit())
}

func TestRole_CanView(t *testing.T) {
	assert.True(t, RoleViewer.CanView())
	assert.False(t, RoleNone.CanView())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleEditor, ParseRole("Editor"))
	assert.Equal(t, RoleOwner, ParseRole("owner"))
	assert.Equal(t, RoleNone, ParseRole("bogus"))
	assert.Equal(t, RoleNone, ParseRole(""))
}
