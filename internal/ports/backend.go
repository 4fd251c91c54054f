package ports

import (
	"context"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// WishlistAPI is the backend surface for wishlists and collaborator grants.
type WishlistAPI interface {
	ListMyWishlists(ctx context.Context, token string) ([]model.Wishlist, error)
	ListWishlistsWithRoles(ctx context.Context, token string) ([]model.Wishlist, error)
	GetWishlist(ctx context.Context, token string, id int64) (model.Wishlist, error)
	CreateWishlist(ctx context.Context, token string, in model.WishlistInput) (model.Wishlist, error)
	UpdateWishlist(ctx context.Context, token string, id int64, in model.WishlistInput) (model.Wishlist, error)
	DeleteWishlist(ctx context.Context, token string, id int64) error
	ListCollaborators(ctx context.Context, token string, id int64) ([]model.Collaborator, error)
	AddCollaborator(ctx context.Context, token string, id int64, username, role string) error
	UpdateCollaborator(ctx context.Context, token string, id, collabID int64, role string) error
	RemoveCollaborator(ctx context.Context, token string, id, collabID int64) error
	TransferOwner(ctx context.Context, token string, id, newOwnerID int64) error
}

// ItemAPI is the backend surface for wishlist items and product scraping.
type ItemAPI interface {
	ListItems(ctx context.Context, token string, wishlistID int64) ([]model.Item, error)
	CreateItem(ctx context.Context, token string, wishlistID int64, in model.ItemInput) (model.Item, error)
	UpdateItem(ctx context.Context, token string, itemID int64, in model.ItemInput) (model.Item, error)
	DeleteItem(ctx context.Context, token string, itemID int64) error
	ReserveItem(ctx context.Context, token string, itemID int64) (model.Item, error)
	UnreserveItem(ctx context.Context, token string, itemID int64) (model.Item, error)
	PurchaseItem(ctx context.Context, token string, itemID int64) (model.Item, error)
	Scrape(ctx context.Context, token, productURL string) (model.ScrapedProduct, error)
}

// ShareAPI is the backend surface for internal and external shares.
type ShareAPI interface {
	ListShares(ctx context.Context, token string) ([]model.Share, error)
	SharedWithMe(ctx context.Context, token string) ([]model.SharedWishlist, error)
	CreateInternalShare(ctx context.Context, token string, in model.ShareInput) (model.Share, error)
	CreateExternalShare(ctx context.Context, token string, in model.ShareInput) (model.Share, error)
	ToggleShare(ctx context.Context, token string, shareID int64) (model.Share, error)
	UpdateSharePermission(ctx context.Context, token string, shareID int64, permission string) error
	UpdateSharePassword(ctx context.Context, token string, shareID int64, password string) error
	DeleteShare(ctx context.Context, token string, shareID int64) error
	ExternalShareInfo(ctx context.Context, shareToken string) (map[string]any, error)
	AccessExternalShare(ctx context.Context, shareToken, password string) (model.PublicWishlist, error)
	ReserveExternalItem(ctx context.Context, shareToken string, itemID int64, guestName string) error
	PurchaseExternalItem(ctx context.Context, shareToken string, itemID int64, guestName string) error
}

// GroupAPI is the backend surface for sharing groups.
type GroupAPI interface {
	ListGroups(ctx context.Context, token string) ([]model.Group, error)
	CreateGroup(ctx context.Context, token string, in model.GroupInput) (model.Group, error)
	UpdateGroup(ctx context.Context, token string, groupID int64, in model.GroupInput) (model.Group, error)
	DeleteGroup(ctx context.Context, token string, groupID int64) error
	ListGroupMembers(ctx context.Context, token string, groupID int64) ([]model.GroupMember, error)
	AddGroupMember(ctx context.Context, token string, groupID int64, username string) error
	RemoveGroupMember(ctx context.Context, token string, groupID, memberID int64) error
}

// NotificationAPI is the backend surface for user notifications.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, token string) ([]model.Notification, error)
	NotificationCount(ctx context.Context, token string) (model.NotificationCount, error)
	MarkNotificationsRead(ctx context.Context, token string, ids []int64) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
}

// AdminAPI is the backend surface for instance administration.
type AdminAPI interface {
	AdminListUsers(ctx context.Context, token string) ([]model.AdminUser, error)
	AdminCreateUser(ctx context.Context, token string, in model.AdminUserInput) (model.AdminUser, error)
	AdminUpdateUser(ctx context.Context, token string, userID int64, in model.AdminUserInput) (model.AdminUser, error)
	AdminDeleteUser(ctx context.Context, token string, userID int64) error
	AdminGetConfig(ctx context.Context, token string) ([]model.ConfigEntry, error)
	AdminUpdateConfig(ctx context.Context, token string, entry model.ConfigEntry) error
	AdminListLogs(ctx context.Context, token string, limit, offset int) ([]model.ActivityLog, error)
	AdminStats(ctx context.Context, token string) (model.SiteStats, error)
}

// SiteInfoAPI fetches public instance branding.
type SiteInfoAPI interface {
	SiteInfo(ctx context.Context) (model.SiteInfo, error)
}
