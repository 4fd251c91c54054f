package auth

import "strings"

// Role represents the effective permission level a user holds over a
// specific wishlist. Keep string form for easy serialization.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RoleNone   Role = "none"
)

// CanEdit reports whether the role enables mutation affordances
// (edit/delete, add items). Viewer and none are read-only.
func (r Role) CanEdit() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleEditor:
		return true
	default:
		return false
	}
}

// CanView reports whether the role grants read access at all.
func (r Role) CanView() bool { return r != RoleNone }

// ParseRole maps a backend-supplied role string to a Role. Unknown or empty
// strings degrade to RoleNone: an unrecognized grant must never unlock
// privileged affordances.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleOwner:
		return RoleOwner
	case RoleEditor:
		return RoleEditor
	case RoleViewer:
		return RoleViewer
	default:
		return RoleNone
	}
}

// ResolveRole computes the effective role for a user over a wishlist from
// three independent signals: the global admin flag, ownership, and the
// explicit share grant returned alongside the wishlist by a listing
// endpoint. Precedence, highest first: admin, owner, granted role, none.
//
// The result is derived state. It must be recomputed from every fresh
// listing response, never cached across fetches, because grants change
// server-side between fetches.
func ResolveRole(user User, ownerID int64, granted string) Role {
	if user.IsZero() {
		return RoleNone
	}
	if user.IsAdmin {
		return RoleAdmin
	}
	if ownerID != 0 && ownerID == user.ID {
		return RoleOwner
	}
	return ParseRole(granted)
}
