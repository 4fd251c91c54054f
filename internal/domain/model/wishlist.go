package model

// Package model contains the view-model entities the gateway exchanges with
// the Wisherr backend. Field names and json tags follow the backend API
// contracts; the gateway never persists these shapes itself.

import (
	"time"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

// Wishlist is a wishlist row as returned by the backend listing endpoints.
// Role carries the explicit share grant for the requesting user when the
// endpoint annotates one (e.g. /wishlists/with-roles); it is one input to
// role resolution, never the resolved result.
type Wishlist struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsPublic    bool       `json:"is_public"`
	Occasion    string     `json:"occasion,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	IsArchived  bool       `json:"is_archived"`
	CoverColor  string     `json:"cover_color,omitempty"`
	Role        string     `json:"role,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EffectiveRole resolves the requesting user's permission over this
// wishlist. Recomputed per row of every fresh listing response.
func (w Wishlist) EffectiveRole(user domainauth.User) domainauth.Role {
	return domainauth.ResolveRole(user, w.OwnerID, w.Role)
}

// WishlistView is a wishlist annotated with its resolved role and mutation
// affordance for the current user. This is what the gateway hands to pages.
type WishlistView struct {
	Wishlist
	EffectiveRole domainauth.Role `json:"effective_role"`
	CanEdit       bool            `json:"can_edit"`
}

// Annotate builds the view for one user. The annotation is derived state:
// it lives only as long as the listing response it was computed from.
func Annotate(w Wishlist, user domainauth.User) WishlistView {
	role := w.EffectiveRole(user)
	return WishlistView{Wishlist: w, EffectiveRole: role, CanEdit: role.CanEdit()}
}

// AnnotateAll maps Annotate over a listing response, preserving order.
func AnnotateAll(lists []Wishlist, user domainauth.User) []WishlistView {
	views := make([]WishlistView, 0, len(lists))
	for _, w := range lists {
		views = append(views, Annotate(w, user))
	}
	return views
}

// Collaborator is an explicit per-user grant on a wishlist.
type Collaborator struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// WishlistInput carries the mutable fields for create/update calls.
type WishlistInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Occasion    string     `json:"occasion,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	CoverColor  string     `json:"cover_color,omitempty"`
}
