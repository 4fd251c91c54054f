package model

import "time"

// Item status values as used by the backend.
const (
	ItemStatusAvailable = "available"
	ItemStatusReserved  = "reserved"
	ItemStatusPurchased = "purchased"
)

// Item is a wishlist entry.
type Item struct {
	ID          int64     `json:"id"`
	WishlistID  int64     `json:"wishlist_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Status      string    `json:"status"`
	ReservedBy  *int64    `json:"reserved_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemInput carries the mutable fields for create/update calls.
type ItemInput struct {
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ScrapedProduct is the preview the backend's scraper extracts from an
// external product URL. The gateway forwards it verbatim to the item form.
type ScrapedProduct struct {
	Name     string   `json:"name,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	URL      string   `json:"url"`
}
