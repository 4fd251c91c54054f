package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/mocks"
	mockauth "github.com/wisherr/wisherr-ui/internal/mocks/auth"
	mocknotify "github.com/wisherr/wisherr-ui/internal/mocks/notify"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// testEnv wires a router against in-memory doubles and gomock backends.
type testEnv struct {
	router      http.Handler
	auth        *service.AuthService
	sessions    *mockauth.MemorySessionStore
	profileAPI  *mockauth.MockProfileAPI
	wishlistAPI *mocks.MockWishlistAPI
	itemAPI     *mocks.MockItemAPI
	flashStore  *mocknotify.MemoryFlashStore
}

type stubSiteInfoAPI struct{}

func (stubSiteInfoAPI) SiteInfo(context.Context) (model.SiteInfo, error) {
	return model.SiteInfo{SiteTitle: "Wisherr Test", AllowRegistration: true}, nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := mockauth.NewMemorySessionStore()
	profileAPI := mockauth.NewMockProfileAPI(domainauth.User{})
	auth := service.NewAuthService(service.AuthServiceOptions{
		Authenticator: mockauth.NewMockAuthenticator(),
		Identities:    mockauth.NewMockIdentityResolver(),
		Registrar:     mockauth.NewMockRegistrar(),
		Profiles:      profileAPI,
		Sessions:      sessions,
		SessionTTL:    time.Hour,
	})

	wishlistAPI := mocks.NewMockWishlistAPI(ctrl)
	itemAPI := mocks.NewMockItemAPI(ctrl)
	flashStore := mocknotify.NewMemoryFlashStore()

	router := NewRouter(RouterServices{
		Auth:      auth,
		Wishlists: service.NewWishlistService(service.WishlistServiceOptions{API: wishlistAPI}),
		Items:     service.NewItemService(service.ItemServiceOptions{API: itemAPI}),
		Site:      service.NewSiteService(service.SiteServiceOptions{API: stubSiteInfoAPI{}, Logger: logger}),
		Flash:     service.NewFlashService(service.FlashServiceOptions{Store: flashStore, Logger: logger}),
		Confirms:  service.NewConfirmService(service.ConfirmServiceOptions{Store: mocknotify.NewMemoryConfirmStore()}),
		Logger:    logger,
	})

	return &testEnv{
		router:      router,
		auth:        auth,
		sessions:    sessions,
		profileAPI:  profileAPI,
		wishlistAPI: wishlistAPI,
		itemAPI:     itemAPI,
		flashStore:  flashStore,
	}
}

// signIn seeds a session directly into the store and returns its cookie.
func (e *testEnv) signIn(t *testing.T, user domainauth.User) *http.Cookie {
	t.Helper()

	sess, err := domainauth.NewSession("test-session", "bearer-token", user, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, e.sessions.Save(context.Background(), sess))
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
