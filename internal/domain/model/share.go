package model

import (
	"time"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
)

// Share types as used by the backend.
const (
	ShareTypeInternal = "internal"
	ShareTypeExternal = "external"
)

// Share is a wishlist share grant owned by the current user.
type Share struct {
	ID                  int64      `json:"id"`
	WishlistID          int64      `json:"wishlist_id"`
	WishlistTitle       string     `json:"wishlist_title"`
	ShareType           string     `json:"share_type"`
	Permission          string     `json:"permission"`
	TargetGroupID       *int64     `json:"target_group_id,omitempty"`
	TargetGroupName     string     `json:"target_group_name,omitempty"`
	TargetUserID        *int64     `json:"target_user_id,omitempty"`
	TargetUsername      string     `json:"target_username,omitempty"`
	ShareToken          string     `json:"share_token,omitempty"`
	ShareURL            string     `json:"share_url,omitempty"`
	NotifyOnReservation bool       `json:"notify_on_reservation"`
	CreatedAt           time.Time  `json:"created_at"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	IsActive            bool       `json:"is_active"`
}

// SharedWishlist is a row from /shares/shared-with-me: someone else's
// wishlist the current user was granted access to.
type SharedWishlist struct {
	ID                  int64  `json:"id"`
	WishlistID          int64  `json:"wishlist_id"`
	WishlistTitle       string `json:"wishlist_title"`
	WishlistDescription string `json:"wishlist_description,omitempty"`
	OwnerUsername       string `json:"owner_username"`
	Permission          string `json:"permission"`
	ShareType           string `json:"share_type"`
}

// SharedWishlistView is a shared row annotated with the viewer's resolved
// role and mutation affordance, like WishlistView for owned listings.
type SharedWishlistView struct {
	SharedWishlist
	EffectiveRole domainauth.Role `json:"effective_role"`
	CanEdit       bool            `json:"can_edit"`
}

// AnnotateShared resolves the viewer's role on a shared row. The owner is
// by definition someone else, so ownership never applies; the role comes
// from the share grant, with the admin override intact.
func AnnotateShared(sw SharedWishlist, user domainauth.User) SharedWishlistView {
	role := domainauth.ResolveRole(user, 0, sw.Permission)
	return SharedWishlistView{SharedWishlist: sw, EffectiveRole: role, CanEdit: role.CanEdit()}
}

// AnnotateAllShared maps AnnotateShared over a listing, preserving order.
func AnnotateAllShared(rows []SharedWishlist, user domainauth.User) []SharedWishlistView {
	views := make([]SharedWishlistView, 0, len(rows))
	for _, sw := range rows {
		views = append(views, AnnotateShared(sw, user))
	}
	return views
}

// ShareInput carries the fields for creating a share.
type ShareInput struct {
	WishlistID          int64      `json:"wishlist_id"`
	Permission          string     `json:"permission,omitempty"`
	TargetGroupID       *int64     `json:"target_group_id,omitempty"`
	TargetUserID        *int64     `json:"target_user_id,omitempty"`
	Password            string     `json:"password,omitempty"`
	NotifyOnReservation bool       `json:"notify_on_reservation,omitempty"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
}

// PublicWishlist is the anonymous view of an externally shared wishlist,
// returned by the backend after a successful password challenge.
type PublicWishlist struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	OwnerName   string `json:"owner_name,omitempty"`
	Items       []Item `json:"items"`
	Permission  string `json:"permission"`
}
