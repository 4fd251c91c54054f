package httpx

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/wisherr/wisherr-ui/internal/service"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
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

	CookieDomain string
	// StaticDir is the built frontend bundle; empty disables page serving
	// and leaves only the JSON API.
	StaticDir string
	Logger    *slog.Logger
}

// NewRouter creates and configures the gateway's HTTP handler.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Flash:        services.Flash,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	wishlistHandlers := &WishlistHandlers{Svc: services.Wishlists, Confirms: services.Confirms}
	itemHandlers := &ItemHandlers{Svc: services.Items, Confirms: services.Confirms}
	shareHandlers := &ShareHandlers{Svc: services.Shares, Confirms: services.Confirms}
	groupHandlers := &GroupHandlers{Svc: services.Groups}
	notificationHandlers := &NotificationHandlers{Svc: services.Notifications}
	adminHandlers := &AdminHandlers{Svc: services.Admin}
	siteHandlers := &SiteHandlers{Svc: services.Site}
	toastHandlers := &ToastHandlers{Svc: services.Flash}
	confirmHandlers := &ConfirmHandlers{
		Confirms:  services.Confirms,
		Flash:     services.Flash,
		Wishlists: services.Wishlists,
		Items:     services.Items,
		Shares:    services.Shares,
	}

	requireAuth := RequireAuth(services.Auth)
	requireAdmin := RequireAdmin(services.Auth)

	registerAuthRoutes(mux, authHandlers, requireAuth)
	registerWishlistRoutes(mux, wishlistHandlers, itemHandlers, requireAuth)
	registerShareRoutes(mux, shareHandlers, requireAuth)
	registerGroupRoutes(mux, groupHandlers, requireAuth)
	registerNotificationRoutes(mux, notificationHandlers, requireAuth)
	registerNotifyRoutes(mux, toastHandlers, confirmHandlers, requireAuth)
	registerAdminRoutes(mux, adminHandlers, requireAdmin)

	mux.HandleFunc("GET /api/site-info", siteHandlers.Info)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.StaticDir != "" {
		registerPageRoutes(mux, services)
	}

	// Compression, logging, and recovery wrap the router at server startup;
	// browser detection lives here because the guards depend on it.
	return BrowserDetection()(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, guard func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
	mux.HandleFunc("POST /api/auth/refresh", h.Refresh)
	mux.Handle("PUT /api/auth/profile", guard(http.HandlerFunc(h.UpdateProfile)))
	mux.HandleFunc("GET /auth/sso/login", h.SSOLogin)
	mux.HandleFunc("GET /auth/sso/callback", h.SSOCallback)
}

func registerWishlistRoutes(
	mux *http.ServeMux,
	h *WishlistHandlers,
	items *ItemHandlers,
	guard func(http.Handler) http.Handler,
) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/wishlists", wrap(h.List))
	mux.Handle("POST /api/wishlists", wrap(h.Create))
	mux.Handle("GET /api/wishlists/{id}", wrap(h.Get))
	mux.Handle("PUT /api/wishlists/{id}", wrap(h.Update))
	mux.Handle("DELETE /api/wishlists/{id}", wrap(h.Delete))
	mux.Handle("GET /api/wishlists/{id}/collaborators", wrap(h.Collaborators))
	mux.Handle("POST /api/wishlists/{id}/collaborators", wrap(h.AddCollaborator))
	mux.Handle("PUT /api/wishlists/{id}/collaborators/{collabID}", wrap(h.UpdateCollaborator))
	mux.Handle("DELETE /api/wishlists/{id}/collaborators/{collabID}", wrap(h.RemoveCollaborator))
	mux.Handle("POST /api/wishlists/{id}/transfer", wrap(h.TransferOwner))

	mux.Handle("GET /api/wishlists/{id}/items", wrap(items.List))
	mux.Handle("POST /api/wishlists/{id}/items", wrap(items.Create))
	mux.Handle("PUT /api/items/{id}", wrap(items.Update))
	mux.Handle("DELETE /api/items/{id}", wrap(items.Delete))
	mux.Handle("POST /api/items/{id}/reserve", wrap(items.Reserve))
	mux.Handle("DELETE /api/items/{id}/reserve", wrap(items.Unreserve))
	mux.Handle("POST /api/items/{id}/purchase", wrap(items.Purchase))
	mux.Handle("POST /api/scrape", wrap(items.Scrape))
}

func registerShareRoutes(mux *http.ServeMux, h *ShareHandlers, guard func(http.Handler) http.Handler) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/shares", wrap(h.List))
	mux.Handle("POST /api/shares", wrap(h.Create))
	mux.Handle("GET /api/shares/shared-with-me", wrap(h.SharedWithMe))
	mux.Handle("POST /api/shares/{id}/toggle", wrap(h.Toggle))
	mux.Handle("PUT /api/shares/{id}/permission", wrap(h.UpdatePermission))
	mux.Handle("PUT /api/shares/{id}/password", wrap(h.UpdatePassword))
	mux.Handle("DELETE /api/shares/{id}", wrap(h.Delete))

	// Public share flow is anonymous: its password challenge belongs to the
	// backend, not the session layer.
	mux.HandleFunc("GET /api/shared/{token}", h.PublicInfo)
	mux.HandleFunc("POST /api/shared/{token}/access", h.PublicAccess)
	mux.HandleFunc("POST /api/shared/{token}/items/{id}/reserve", h.PublicReserve)
	mux.HandleFunc("POST /api/shared/{token}/items/{id}/purchase", h.PublicPurchase)
}

func registerGroupRoutes(mux *http.ServeMux, h *GroupHandlers, guard func(http.Handler) http.Handler) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/groups", wrap(h.List))
	mux.Handle("POST /api/groups", wrap(h.Create))
	mux.Handle("PUT /api/groups/{id}", wrap(h.Update))
	mux.Handle("DELETE /api/groups/{id}", wrap(h.Delete))
	mux.Handle("GET /api/groups/{id}/members", wrap(h.Members))
	mux.Handle("POST /api/groups/{id}/members", wrap(h.AddMember))
	mux.Handle("DELETE /api/groups/{id}/members/{memberID}", wrap(h.RemoveMember))
}

func registerNotificationRoutes(mux *http.ServeMux, h *NotificationHandlers, guard func(http.Handler) http.Handler) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/notifications", wrap(h.List))
	mux.Handle("GET /api/notifications/unread-count", wrap(h.UnreadCount))
	mux.Handle("POST /api/notifications/mark-read", wrap(h.MarkRead))
	mux.Handle("POST /api/notifications/mark-all-read", wrap(h.MarkAllRead))
}

func registerNotifyRoutes(
	mux *http.ServeMux,
	toasts *ToastHandlers,
	confirms *ConfirmHandlers,
	guard func(http.Handler) http.Handler,
) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/toasts", wrap(toasts.List))
	mux.Handle("DELETE /api/toasts/{id}", wrap(toasts.Dismiss))
	mux.Handle("GET /api/confirm", wrap(confirms.Pending))
	mux.Handle("POST /api/confirm/{id}", wrap(confirms.Resolve))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, guard func(http.Handler) http.Handler) {
	wrap := func(hf http.HandlerFunc) http.Handler { return guard(hf) }

	mux.Handle("GET /api/admin/users", wrap(h.ListUsers))
	mux.Handle("POST /api/admin/users", wrap(h.CreateUser))
	mux.Handle("PUT /api/admin/users/{id}", wrap(h.UpdateUser))
	mux.Handle("DELETE /api/admin/users/{id}", wrap(h.DeleteUser))
	mux.Handle("GET /api/admin/config", wrap(h.GetConfig))
	mux.Handle("PUT /api/admin/config", wrap(h.UpdateConfig))
	mux.Handle("GET /api/admin/logs", wrap(h.ListLogs))
	mux.Handle("GET /api/admin/stats", wrap(h.Stats))
}

// registerPageRoutes serves the built frontend bundle. Every page route
// falls through to index.html; the guards decide who gets there. Public
// share pages bypass guards entirely.
func registerPageRoutes(mux *http.ServeMux, services RouterServices) {
	spa := spaHandler(services.StaticDir)

	requireAuth := RequireAuth(services.Auth)
	requireAdmin := RequireAdmin(services.Auth)
	redirectAuthed := RedirectAuthenticated(services.Auth)

	mux.Handle("GET /login", redirectAuthed(spa))
	mux.Handle("GET /register", redirectAuthed(spa))
	mux.Handle("GET /shared/", spa)
	mux.Handle("GET /admin/", requireAdmin(spa))
	mux.Handle("GET /assets/", spa)
	mux.Handle("GET /{$}", requireAuth(spa))
	mux.Handle("GET /dashboard", requireAuth(spa))
	mux.Handle("GET /wishlists/", requireAuth(spa))
	mux.Handle("GET /groups/", requireAuth(spa))
	mux.Handle("GET /settings", requireAuth(spa))
}

// spaHandler serves files from dir, falling back to index.html for paths
// without a file extension so client-side routing keeps working on reload.
func spaHandler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if clean != "." && !strings.Contains(clean, "..") {
			if info, err := os.Stat(filepath.Join(dir, clean)); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	})
}
