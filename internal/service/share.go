package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// ShareServiceOptions groups dependencies for ShareService.
type ShareServiceOptions struct {
	API ports.ShareAPI
}

// ShareService proxies share management and the public external-share flow.
// External-share operations carry the opaque share token instead of a
// bearer credential; they are the one surface guests reach without logging
// in.
type ShareService struct {
	api ports.ShareAPI
}

// NewShareService constructs a new ShareService.
func NewShareService(opts ShareServiceOptions) *ShareService {
	return &ShareService{api: opts.API}
}

// List returns the session user's outgoing shares.
func (s *ShareService) List(ctx context.Context, sess domainauth.Session) ([]model.Share, error) {
	shares, err := s.api.ListShares(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}
	return shares, nil
}

// SharedWithMe returns wishlists other users shared with the session user,
// each annotated with the role the grant confers.
func (s *ShareService) SharedWithMe(ctx context.Context, sess domainauth.Session) ([]model.SharedWishlistView, error) {
	shared, err := s.api.SharedWithMe(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list shared wishlists: %w", err)
	}
	return model.AnnotateAllShared(shared, sess.User), nil
}

// CreateInternal shares a wishlist with another registered user or group.
func (s *ShareService) CreateInternal(ctx context.Context, sess domainauth.Session, in model.ShareInput) (model.Share, error) {
	if in.WishlistID <= 0 {
		return model.Share{}, apperrors.ValidationField("wishlist_id", "wishlist is required")
	}

	share, err := s.api.CreateInternalShare(ctx, sess.Token, in)
	if err != nil {
		return model.Share{}, fmt.Errorf("create internal share: %w", err)
	}
	return share, nil
}

// CreateExternal creates a public link share, optionally password protected.
func (s *ShareService) CreateExternal(ctx context.Context, sess domainauth.Session, in model.ShareInput) (model.Share, error) {
	if in.WishlistID <= 0 {
		return model.Share{}, apperrors.ValidationField("wishlist_id", "wishlist is required")
	}

	share, err := s.api.CreateExternalShare(ctx, sess.Token, in)
	if err != nil {
		return model.Share{}, fmt.Errorf("create external share: %w", err)
	}
	return share, nil
}

// Toggle flips a share between active and paused.
func (s *ShareService) Toggle(ctx context.Context, sess domainauth.Session, shareID int64) (model.Share, error) {
	share, err := s.api.ToggleShare(ctx, sess.Token, shareID)
	if err != nil {
		return model.Share{}, fmt.Errorf("toggle share: %w", err)
	}
	return share, nil
}

// UpdatePermission changes the role a share grants.
func (s *ShareService) UpdatePermission(ctx context.Context, sess domainauth.Session, shareID int64, permission string) error {
	if parsed := domainauth.ParseRole(permission); parsed == domainauth.RoleNone {
		return apperrors.ValidationField("permission", fmt.Sprintf("unknown permission %q", permission))
	}

	if err := s.api.UpdateSharePermission(ctx, sess.Token, shareID, permission); err != nil {
		return fmt.Errorf("update share permission: %w", err)
	}
	return nil
}

// UpdatePassword sets or clears the password on an external share.
func (s *ShareService) UpdatePassword(ctx context.Context, sess domainauth.Session, shareID int64, password string) error {
	if err := s.api.UpdateSharePassword(ctx, sess.Token, shareID, password); err != nil {
		return fmt.Errorf("update share password: %w", err)
	}
	return nil
}

// Delete revokes a share.
func (s *ShareService) Delete(ctx context.Context, sess domainauth.Session, shareID int64) error {
	if err := s.api.DeleteShare(ctx, sess.Token, shareID); err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	return nil
}

// PublicInfo returns metadata about an external share link, including
// whether it requires a password, without exposing the wishlist itself.
func (s *ShareService) PublicInfo(ctx context.Context, shareToken string) (map[string]any, error) {
	if shareToken == "" {
		return nil, apperrors.NotFound("share not found")
	}

	info, err := s.api.ExternalShareInfo(ctx, shareToken)
	if err != nil {
		return nil, fmt.Errorf("external share info: %w", err)
	}
	return info, nil
}

// PublicAccess opens an external share, supplying the password when the
// share demands one. The backend rejects a wrong password with 401.
func (s *ShareService) PublicAccess(ctx context.Context, shareToken, password string) (model.PublicWishlist, error) {
	if shareToken == "" {
		return model.PublicWishlist{}, apperrors.NotFound("share not found")
	}

	w, err := s.api.AccessExternalShare(ctx, shareToken, password)
	if err != nil {
		return model.PublicWishlist{}, fmt.Errorf("access external share: %w", err)
	}
	return w, nil
}

// PublicReserve reserves an item through an external share as a named guest.
func (s *ShareService) PublicReserve(ctx context.Context, shareToken string, itemID int64, guestName string) error {
	if guestName == "" {
		return apperrors.ValidationField("guest_name", "guest name is required")
	}

	if err := s.api.ReserveExternalItem(ctx, shareToken, itemID, guestName); err != nil {
		return fmt.Errorf("reserve external item: %w", err)
	}
	return nil
}

// PublicPurchase marks an item purchased through an external share.
func (s *ShareService) PublicPurchase(ctx context.Context, shareToken string, itemID int64, guestName string) error {
	if guestName == "" {
		return apperrors.ValidationField("guest_name", "guest name is required")
	}

	if err := s.api.PurchaseExternalItem(ctx, shareToken, itemID, guestName); err != nil {
		return fmt.Errorf("purchase external item: %w", err)
	}
	return nil
}
