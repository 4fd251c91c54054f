package service

import (
	"context"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// ItemServiceOptions groups dependencies for ItemService.
type ItemServiceOptions struct {
	API ports.ItemAPI
}

// ItemService proxies wishlist item operations to the backend, including the
// reserve/purchase status transitions and product scraping.
type ItemService struct {
	api ports.ItemAPI
}

// NewItemService constructs a new ItemService.
func NewItemService(opts ItemServiceOptions) *ItemService {
	return &ItemService{api: opts.API}
}

// List returns a wishlist's items.
func (s *ItemService) List(ctx context.Context, sess domainauth.Session, wishlistID int64) ([]model.Item, error) {
	items, err := s.api.ListItems(ctx, sess.Token, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create adds an item to a wishlist.
func (s *ItemService) Create(ctx context.Context, sess domainauth.Session, wishlistID int64, in model.ItemInput) (model.Item, error) {
	if in.Name == "" {
		return model.Item{}, apperrors.ValidationField("name", "name is required")
	}

	item, err := s.api.CreateItem(ctx, sess.Token, wishlistID, in)
	if err != nil {
		return model.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update updates an item.
func (s *ItemService) Update(ctx context.Context, sess domainauth.Session, itemID int64, in model.ItemInput) (model.Item, error) {
	if in.Name == "" {
		return model.Item{}, apperrors.ValidationField("name", "name is required")
	}

	item, err := s.api.UpdateItem(ctx, sess.Token, itemID, in)
	if err != nil {
		return model.Item{}, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, sess domainauth.Session, itemID int64) error {
	if err := s.api.DeleteItem(ctx, sess.Token, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Reserve marks an item reserved for the session user. The backend is the
// arbiter of conflicts: a 409 means someone else got there first.
func (s *ItemService) Reserve(ctx context.Context, sess domainauth.Session, itemID int64) (model.Item, error) {
	item, err := s.api.ReserveItem(ctx, sess.Token, itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("reserve item: %w", err)
	}
	return item, nil
}

// Unreserve releases the session user's reservation.
func (s *ItemService) Unreserve(ctx context.Context, sess domainauth.Session, itemID int64) (model.Item, error) {
	item, err := s.api.UnreserveItem(ctx, sess.Token, itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("unreserve item: %w", err)
	}
	return item, nil
}

// Purchase marks an item purchased.
func (s *ItemService) Purchase(ctx context.Context, sess domainauth.Session, itemID int64) (model.Item, error) {
	item, err := s.api.PurchaseItem(ctx, sess.Token, itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("purchase item: %w", err)
	}
	return item, nil
}

// Scrape asks the backend to extract product data from a URL, for
// prefilling the item form.
func (s *ItemService) Scrape(ctx context.Context, sess domainauth.Session, productURL string) (model.ScrapedProduct, error) {
	if productURL == "" {
		return model.ScrapedProduct{}, apperrors.ValidationField("url", "url is required")
	}

	product, err := s.api.Scrape(ctx, sess.Token, productURL)
	if err != nil {
		return model.ScrapedProduct{}, fmt.Errorf("scrape product: %w", err)
	}
	return product, nil
}
