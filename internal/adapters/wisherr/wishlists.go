package wisherr

import (
	"context"
	"fmt"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// ListMyWishlists returns the wishlists owned by the token's user.
func (c *Client) ListMyWishlists(ctx context.Context, token string) ([]model.Wishlist, error) {
	var lists []model.Wishlist
	if err := c.get(ctx, token, "/wishlists/mine", &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// ListWishlistsWithRoles returns all wishlists visible to the token's user,
// each annotated with the user's granted role.
func (c *Client) ListWishlistsWithRoles(ctx context.Context, token string) ([]model.Wishlist, error) {
	var lists []model.Wishlist
	if err := c.get(ctx, token, "/wishlists/with-roles", &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetWishlist fetches one wishlist with the user's granted role.
func (c *Client) GetWishlist(ctx context.Context, token string, id int64) (model.Wishlist, error) {
	var w model.Wishlist
	if err := c.get(ctx, token, fmt.Sprintf("/wishlists/%d", id), &w); err != nil {
		return model.Wishlist{}, err
	}
	return w, nil
}

// CreateWishlist creates a wishlist owned by the token's user.
func (c *Client) CreateWishlist(ctx context.Context, token string, in model.WishlistInput) (model.Wishlist, error) {
	var w model.Wishlist
	if err := c.post(ctx, token, "/wishlists", in, &w); err != nil {
		return model.Wishlist{}, err
	}
	return w, nil
}

// UpdateWishlist updates a wishlist.
func (c *Client) UpdateWishlist(ctx context.Context, token string, id int64, in model.WishlistInput) (model.Wishlist, error) {
	var w model.Wishlist
	if err := c.put(ctx, token, fmt.Sprintf("/wishlists/%d", id), in, &w); err != nil {
		return model.Wishlist{}, err
	}
	return w, nil
}

// DeleteWishlist deletes a wishlist.
func (c *Client) DeleteWishlist(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/wishlists/%d", id))
}

// ListCollaborators returns the explicit per-user grants on a wishlist.
func (c *Client) ListCollaborators(ctx context.Context, token string, id int64) ([]model.Collaborator, error) {
	var collabs []model.Collaborator
	if err := c.get(ctx, token, fmt.Sprintf("/wishlists/%d/collaborators", id), &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}

// AddCollaborator grants a user a role on a wishlist.
func (c *Client) AddCollaborator(ctx context.Context, token string, id int64, username, role string) error {
	body := map[string]string{"username": username, "role": role}
	return c.post(ctx, token, fmt.Sprintf("/wishlists/%d/collaborators", id), body, nil)
}

// UpdateCollaborator changes an existing grant's role.
func (c *Client) UpdateCollaborator(ctx context.Context, token string, id, collabID int64, role string) error {
	body := map[string]string{"role": role}
	return c.put(ctx, token, fmt.Sprintf("/wishlists/%d/collaborators/%d", id, collabID), body, nil)
}

// RemoveCollaborator revokes a grant.
func (c *Client) RemoveCollaborator(ctx context.Context, token string, id, collabID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/wishlists/%d/collaborators/%d", id, collabID))
}

// TransferOwner hands a wishlist to another user.
func (c *Client) TransferOwner(ctx context.Context, token string, id, newOwnerID int64) error {
	body := map[string]int64{"new_owner_id": newOwnerID}
	return c.put(ctx, token, fmt.Sprintf("/wishlists/%d/transfer_owner", id), body, nil)
}
