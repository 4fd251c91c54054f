package wisherr

import (
	"context"
	"fmt"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// ListShares returns the shares created by the token's user.
func (c *Client) ListShares(ctx context.Context, token string) ([]model.Share, error) {
	var shares []model.Share
	if err := c.get(ctx, token, "/shares", &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// SharedWithMe returns wishlists other users shared with the token's user.
func (c *Client) SharedWithMe(ctx context.Context, token string) ([]model.SharedWishlist, error) {
	var shared []model.SharedWishlist
	if err := c.get(ctx, token, "/shares/shared-with-me", &shared); err != nil {
		return nil, err
	}
	return shared, nil
}

// CreateInternalShare shares a wishlist with a user or group inside the instance.
func (c *Client) CreateInternalShare(ctx context.Context, token string, in model.ShareInput) (model.Share, error) {
	var share model.Share
	if err := c.post(ctx, token, "/shares/internal", in, &share); err != nil {
		return model.Share{}, err
	}
	return share, nil
}

// CreateExternalShare creates a password-protected public link.
func (c *Client) CreateExternalShare(ctx context.Context, token string, in model.ShareInput) (model.Share, error) {
	var share model.Share
	if err := c.post(ctx, token, "/shares/external", in, &share); err != nil {
		return model.Share{}, err
	}
	return share, nil
}

// ToggleShare activates or deactivates a share.
func (c *Client) ToggleShare(ctx context.Context, token string, shareID int64) (model.Share, error) {
	var share model.Share
	if err := c.put(ctx, token, fmt.Sprintf("/shares/%d/toggle", shareID), nil, &share); err != nil {
		return model.Share{}, err
	}
	return share, nil
}

// UpdateSharePermission changes a share's permission level.
func (c *Client) UpdateSharePermission(ctx context.Context, token string, shareID int64, permission string) error {
	body := map[string]string{"permission": permission}
	return c.put(ctx, token, fmt.Sprintf("/shares/%d/permission", shareID), body, nil)
}

// UpdateSharePassword changes an external share's password.
func (c *Client) UpdateSharePassword(ctx context.Context, token string, shareID int64, password string) error {
	body := map[string]string{"password": password}
	return c.put(ctx, token, fmt.Sprintf("/shares/%d/password", shareID), body, nil)
}

// DeleteShare removes a share.
func (c *Client) DeleteShare(ctx context.Context, token string, shareID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/shares/%d", shareID))
}

// ExternalShareInfo returns the public metadata of an external share
// (title, whether a password is required). No authentication.
func (c *Client) ExternalShareInfo(ctx context.Context, shareToken string) (map[string]any, error) {
	var info map[string]any
	if err := c.get(ctx, "", "/shares/external/"+shareToken, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// AccessExternalShare submits the password challenge for an external share
// and returns the anonymous wishlist view. The backend owns the gate; the
// gateway only proxies.
func (c *Client) AccessExternalShare(ctx context.Context, shareToken, password string) (model.PublicWishlist, error) {
	body := map[string]string{"password": password}
	var view model.PublicWishlist
	if err := c.post(ctx, "", "/shares/external/"+shareToken+"/access", body, &view); err != nil {
		return model.PublicWishlist{}, err
	}
	return view, nil
}

// ReserveExternalItem reserves an item through an external share, on behalf
// of an anonymous guest identified by name.
func (c *Client) ReserveExternalItem(ctx context.Context, shareToken string, itemID int64, guestName string) error {
	body := map[string]string{"guest_name": guestName}
	return c.post(ctx, "", fmt.Sprintf("/shares/external/%s/reserve/%d", shareToken, itemID), body, nil)
}

// PurchaseExternalItem marks an item purchased through an external share.
func (c *Client) PurchaseExternalItem(ctx context.Context, shareToken string, itemID int64, guestName string) error {
	body := map[string]string{"guest_name": guestName}
	return c.post(ctx, "", fmt.Sprintf("/shares/external/%s/purchase/%d", shareToken, itemID), body, nil)
}
