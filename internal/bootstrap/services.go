package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/wisherr/wisherr-ui/config"
	redisadapter "github.com/wisherr/wisherr-ui/internal/adapters/redis"
	"github.com/wisherr/wisherr-ui/internal/adapters/wisherr"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// ServiceContainer holds every service the HTTP layer consumes.
type ServiceContainer struct {
	Auth          *service.AuthService
	Wishlists     *service.WishlistService
	Items         *service.ItemService
	Shares        *service.ShareService
	Groups        *service.GroupService
	Notifications *service.NotificationService
	Admin         *service.AdminService
	Site          *service.SiteService
	Flash         *service.FlashService
	Confirms      *service.ConfirmService
}

// ServiceDeps contains the external dependencies shared by the services.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Backend     *wisherr.Client
	Logger      *slog.Logger
}

// NewServices wires the service layer. Every backend-facing service shares
// the single fire-once HTTP client; session, toast, and confirm state live
// in Redis.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	flash := service.NewFlashService(service.FlashServiceOptions{
		Store:  redisadapter.NewFlashStore(deps.RedisClient),
		Logger: logger,
	})
	confirms := service.NewConfirmService(service.ConfirmServiceOptions{
		Store: redisadapter.NewConfirmStore(deps.RedisClient),
	})

	auth := BuildAuthService(AuthOptions{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
		Backend:     deps.Backend,
		Logger:      logger,
	})

	return ServiceContainer{
		Auth:          auth,
		Wishlists:     service.NewWishlistService(service.WishlistServiceOptions{API: deps.Backend}),
		Items:         service.NewItemService(service.ItemServiceOptions{API: deps.Backend}),
		Shares:        service.NewShareService(service.ShareServiceOptions{API: deps.Backend}),
		Groups:        service.NewGroupService(service.GroupServiceOptions{API: deps.Backend}),
		Notifications: service.NewNotificationService(service.NotificationServiceOptions{API: deps.Backend}),
		Admin:         service.NewAdminService(service.AdminServiceOptions{API: deps.Backend}),
		Site: service.NewSiteService(service.SiteServiceOptions{
			API:           deps.Backend,
			Logger:        logger,
			FallbackTitle: deps.Config.Site.FallbackTitle,
		}),
		Flash:    flash,
		Confirms: confirms,
	}
}
