package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// WishlistServiceOptions groups dependencies for WishlistService.
type WishlistServiceOptions struct {
	API ports.WishlistAPI
}

// WishlistService proxies wishlist operations to the backend and annotates
// every returned row with the caller's effective role. Roles are recomputed
// from the current user on every call, never cached: a demoted collaborator
// loses edit affordances on the very next listing.
type WishlistService struct {
	api ports.WishlistAPI
}

// NewWishlistService constructs a new WishlistService.
func NewWishlistService(opts WishlistServiceOptions) *WishlistService {
	return &WishlistService{api: opts.API}
}

// ListMine returns the user's own wishlists as views. Ownership makes every
// row editable.
func (s *WishlistService) ListMine(ctx context.Context, sess domainauth.Session) ([]model.WishlistView, error) {
	lists, err := s.api.ListMyWishlists(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list my wishlists: %w", err)
	}
	return model.AnnotateAll(lists, sess.User), nil
}

// ListWithRoles returns every wishlist visible to the user, annotated with
// the effective role resolved from admin flag, ownership, and grants.
func (s *WishlistService) ListWithRoles(ctx context.Context, sess domainauth.Session) ([]model.WishlistView, error) {
	lists, err := s.api.ListWishlistsWithRoles(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list wishlists with roles: %w", err)
	}
	return model.AnnotateAll(lists, sess.User), nil
}

// Get returns one wishlist as a view.
func (s *WishlistService) Get(ctx context.Context, sess domainauth.Session, id int64) (model.WishlistView, error) {
	w, err := s.api.GetWishlist(ctx, sess.Token, id)
	if err != nil {
		return model.WishlistView{}, fmt.Errorf("get wishlist: %w", err)
	}
	return model.Annotate(w, sess.User), nil
}

// Create creates a wishlist owned by the session user.
func (s *WishlistService) Create(ctx context.Context, sess domainauth.Session, in model.WishlistInput) (model.WishlistView, error) {
	if in.Title == "" {
		return model.WishlistView{}, apperrors.ValidationField("title", "title is required")
	}

	w, err := s.api.CreateWishlist(ctx, sess.Token, in)
	if err != nil {
		return model.WishlistView{}, fmt.Errorf("create wishlist: %w", err)
	}
	return model.Annotate(w, sess.User), nil
}

// Update updates a wishlist. The backend is the authority on permission; the
// view's CanEdit flag is a UI affordance, not an access check.
func (s *WishlistService) Update(ctx context.Context, sess domainauth.Session, id int64, in model.WishlistInput) (model.WishlistView, error) {
	if in.Title == "" {
		return model.WishlistView{}, apperrors.ValidationField("title", "title is required")
	}

	w, err := s.api.UpdateWishlist(ctx, sess.Token, id, in)
	if err != nil {
		return model.WishlistView{}, fmt.Errorf("update wishlist: %w", err)
	}
	return model.Annotate(w, sess.User), nil
}

// Delete deletes a wishlist.
func (s *WishlistService) Delete(ctx context.Context, sess domainauth.Session, id int64) error {
	if err := s.api.DeleteWishlist(ctx, sess.Token, id); err != nil {
		return fmt.Errorf("delete wishlist: %w", err)
	}
	return nil
}

// Collaborators returns the explicit grants on a wishlist.
func (s *WishlistService) Collaborators(ctx context.Context, sess domainauth.Session, id int64) ([]model.Collaborator, error) {
	collabs, err := s.api.ListCollaborators(ctx, sess.Token, id)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return collabs, nil
}

// AddCollaborator grants a user a role on a wishlist. Only roles the domain
// knows are accepted; an unknown role would silently degrade to no access.
func (s *WishlistService) AddCollaborator(ctx context.Context, sess domainauth.Session, id int64, username, role string) error {
	if username == "" {
		return apperrors.ValidationField("username", "username is required")
	}
	if parsed := domainauth.ParseRole(role); parsed == domainauth.RoleNone {
		return apperrors.ValidationField("role", fmt.Sprintf("unknown role %q", role))
	}

	if err := s.api.AddCollaborator(ctx, sess.Token, id, username, role); err != nil {
		return fmt.Errorf("add collaborator: %w", err)
	}
	return nil
}

// UpdateCollaborator changes an existing grant's role.
func (s *WishlistService) UpdateCollaborator(ctx context.Context, sess domainauth.Session, id, collabID int64, role string) error {
	if parsed := domainauth.ParseRole(role); parsed == domainauth.RoleNone {
		return apperrors.ValidationField("role", fmt.Sprintf("unknown role %q", role))
	}

	if err := s.api.UpdateCollaborator(ctx, sess.Token, id, collabID, role); err != nil {
		return fmt.Errorf("update collaborator: %w", err)
	}
	return nil
}

// RemoveCollaborator revokes a grant.
func (s *WishlistService) RemoveCollaborator(ctx context.Context, sess domainauth.Session, id, collabID int64) error {
	if err := s.api.RemoveCollaborator(ctx, sess.Token, id, collabID); err != nil {
		return fmt.Errorf("remove collaborator: %w", err)
	}
	return nil
}

// TransferOwner hands a wishlist to another user.
func (s *WishlistService) TransferOwner(ctx context.Context, sess domainauth.Session, id, newOwnerID int64) error {
	if newOwnerID <= 0 {
		return apperrors.ValidationField("new_owner_id", "new owner is required")
	}

	if err := s.api.TransferOwner(ctx, sess.Token, id, newOwnerID); err != nil {
		return fmt.Errorf("transfer owner: %w", err)
	}
	return nil
}
