package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/notify"
)

type confirmPayload struct {
	Confirm struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Action  string `json:"action"`
	} `json:"confirm"`
}

func TestDeleteWishlist_IsConfirmGated(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	// The DELETE request itself must not touch the backend: no expectation
	// is registered, so a call would fail the test.
	rec := env.do(t, http.MethodDelete, "/api/wishlists/5", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var payload confirmPayload
	decodeBody(t, rec, &payload)
	require.NotEmpty(t, payload.Confirm.ID)
	assert.Equal(t, "wishlist.delete:5", payload.Confirm.Action)

	// Accepting the prompt performs exactly one backend delete.
	env.wishlistAPI.EXPECT().DeleteWishlist(gomock.Any(), "bearer-token", int64(5)).Return(nil)

	rec = env.do(t, http.MethodPost, "/api/confirm/"+payload.Confirm.ID,
		map[string]any{"accepted": true}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// A success toast was queued for the next listing.
	toasts, err := env.flashStore.List(t.Context(), "test-session")
	require.NoError(t, err)
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.ToastSuccess, toasts[0].Type)
}

func TestDeclinedConfirm_NeverCallsBackend(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	rec := env.do(t, http.MethodDelete, "/api/wishlists/5", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var payload confirmPayload
	decodeBody(t, rec, &payload)

	rec = env.do(t, http.MethodPost, "/api/confirm/"+payload.Confirm.ID,
		map[string]any{"accepted": false}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The slot is consumed: accepting afterwards is a conflict.
	rec = env.do(t, http.MethodPost, "/api/confirm/"+payload.Confirm.ID,
		map[string]any{"accepted": true}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSupersededConfirm_CannotAuthorizeOldAction(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	rec := env.do(t, http.MethodDelete, "/api/wishlists/5", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var first confirmPayload
	decodeBody(t, rec, &first)

	// A second prompt replaces the first: single slot, not a queue.
	rec = env.do(t, http.MethodDelete, "/api/items/9", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var second confirmPayload
	decodeBody(t, rec, &second)
	require.NotEqual(t, first.Confirm.ID, second.Confirm.ID)

	// Accepting the stale wishlist prompt must not delete anything.
	rec = env.do(t, http.MethodPost, "/api/confirm/"+first.Confirm.ID,
		map[string]any{"accepted": true}, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The newer item prompt still resolves normally.
	env.itemAPI.EXPECT().DeleteItem(gomock.Any(), "bearer-token", int64(9)).Return(nil)
	rec = env.do(t, http.MethodPost, "/api/confirm/"+second.Confirm.ID,
		map[string]any{"accepted": true}, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPendingConfirm_Endpoint(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	rec := env.do(t, http.MethodGet, "/api/confirm", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/wishlists/5", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/confirm", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var payload confirmPayload
	decodeBody(t, rec, &payload)
	assert.Equal(t, "Delete wishlist", payload.Confirm.Title)
}

func TestFailedDispatch_SurfacesErrorAndQueuesErrorToast(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	rec := env.do(t, http.MethodDelete, "/api/wishlists/5", nil, cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var payload confirmPayload
	decodeBody(t, rec, &payload)

	env.wishlistAPI.EXPECT().DeleteWishlist(gomock.Any(), "bearer-token", int64(5)).
		Return(assertableErr{})

	rec = env.do(t, http.MethodPost, "/api/confirm/"+payload.Confirm.ID,
		map[string]any{"accepted": true}, cookie)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	toasts, err := env.flashStore.List(t.Context(), "test-session")
	require.NoError(t, err)
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.ToastError, toasts[0].Type)
	assert.False(t, toasts[0].AutoClose)
}

type assertableErr struct{}

func (assertableErr) Error() string { return "backend exploded" }

func TestToastLifecycle_ListAndDismiss(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.signIn(t, domainauth.User{ID: 7, Username: "alice"})

	env.flashStore.Push(t.Context(), "test-session", notify.NewToast("t1", notify.ToastInfo, "saved"))
	env.flashStore.Push(t.Context(), "test-session", notify.NewToast("t2", notify.ToastError, "broken"))

	rec := env.do(t, http.MethodGet, "/api/toasts", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Toasts []notify.Toast `json:"toasts"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Toasts, 2)
	assert.Equal(t, "t1", body.Toasts[0].ID)

	rec = env.do(t, http.MethodDelete, "/api/toasts/t1", nil, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/toasts", nil, cookie)
	decodeBody(t, rec, &body)
	require.Len(t, body.Toasts, 1)
	assert.Equal(t, "t2", body.Toasts[0].ID)
}

func TestToasts_RequireASession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/toasts", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
