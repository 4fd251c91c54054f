package wisherr

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// ListItems returns the items of a wishlist.
func (c *Client) ListItems(ctx context.Context, token string, wishlistID int64) ([]model.Item, error) {
	var items []model.Item
	if err := c.get(ctx, token, fmt.Sprintf("/wishlists/%d/items", wishlistID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem adds an item to a wishlist.
func (c *Client) CreateItem(ctx context.Context, token string, wishlistID int64, in model.ItemInput) (model.Item, error) {
	var item model.Item
	if err := c.post(ctx, token, fmt.Sprintf("/wishlists/%d/items", wishlistID), in, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// UpdateItem updates an item.
func (c *Client) UpdateItem(ctx context.Context, token string, itemID int64, in model.ItemInput) (model.Item, error) {
	var item model.Item
	if err := c.put(ctx, token, fmt.Sprintf("/items/%d", itemID), in, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, token string, itemID int64) error {
	return c.delete(ctx, token, fmt.Sprintf("/items/%d", itemID))
}

// ReserveItem marks an item reserved by the token's user.
func (c *Client) ReserveItem(ctx context.Context, token string, itemID int64) (model.Item, error) {
	var item model.Item
	if err := c.post(ctx, token, fmt.Sprintf("/items/%d/reserve", itemID), nil, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// UnreserveItem releases a reservation.
func (c *Client) UnreserveItem(ctx context.Context, token string, itemID int64) (model.Item, error) {
	var item model.Item
	if err := c.post(ctx, token, fmt.Sprintf("/items/%d/unreserve", itemID), nil, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// PurchaseItem marks an item purchased.
func (c *Client) PurchaseItem(ctx context.Context, token string, itemID int64) (model.Item, error) {
	var item model.Item
	if err := c.post(ctx, token, fmt.Sprintf("/items/%d/purchase", itemID), nil, &item); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// Scrape asks the backend's scraper for a product preview of an external
// URL (POST /scrape). Scraping itself is entirely server-side.
func (c *Client) Scrape(ctx context.Context, token, productURL string) (model.ScrapedProduct, error) {
	if productURL == "" {
		return model.ScrapedProduct{}, errors.New("product url is required")
	}
	if _, err := url.ParseRequestURI(productURL); err != nil {
		return model.ScrapedProduct{}, fmt.Errorf("invalid product url: %w", err)
	}

	body := map[string]string{"url": productURL}
	var product model.ScrapedProduct
	if err := c.post(ctx, token, "/scrape", body, &product); err != nil {
		return model.ScrapedProduct{}, err
	}
	return product, nil
}
