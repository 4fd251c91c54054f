// Package mocks provides mock implementations for testing the gateway's
// backend API surface.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the backend API port interfaces. Lightweight hand-written doubles for
// the auth and notify ports live in the mocks/auth and mocks/notify
// subpackages.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockAPI := mocks.NewMockWishlistAPI(ctrl)
//	mockAPI.EXPECT().GetWishlist(gomock.Any(), "token", int64(1)).Return(wishlist, nil)
package mocks

// Generate mock for WishlistAPI from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=wishlist_api_mock.go github.com/wisherr/wisherr-ui/internal/ports WishlistAPI

// Generate mock for ItemAPI from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=item_api_mock.go github.com/wisherr/wisherr-ui/internal/ports ItemAPI
