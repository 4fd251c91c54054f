package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// Confirm action verbs. A pending confirmation stores "<verb>:<id>"; the
// resolver parses it back and dispatches the deferred backend call.
const (
	actionDeleteWishlist = "wishlist.delete"
	actionDeleteItem     = "item.delete"
	actionDeleteShare    = "share.delete"
)

// ToastHandlers provides HTTP handlers for the session toast queue.
type ToastHandlers struct {
	Svc *service.FlashService
}

// List handles GET /api/toasts. Expired non-error toasts are pruned by the
// store; what comes back is exactly what the frontend should render.
func (h *ToastHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	toasts, err := h.Svc.List(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"toasts": toasts})
}

// Dismiss handles DELETE /api/toasts/{id}. Dismissing an unknown toast is a
// no-op: it may have expired between render and click.
func (h *ToastHandlers) Dismiss(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Dismiss(r.Context(), sess.ID, r.PathValue("id")); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmHandlers resolves pending confirmations. Accepting one dispatches
// the stored action; the destructive backend call happens here and nowhere
// else, so it can only ever run once per accepted prompt.
type ConfirmHandlers struct {
	Confirms  *service.ConfirmService
	Flash     *service.FlashService
	Wishlists *service.WishlistService
	Items     *service.ItemService
	Shares    *service.ShareService
}

// Pending handles GET /api/confirm. 200 with the pending prompt, or 204
// when nothing awaits an answer.
func (h *ConfirmHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	confirm, found, err := h.Confirms.Pending(r.Context(), sess.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"confirm": confirm})
}

type resolveConfirmRequest struct {
	Accepted bool `json:"accepted"`
}

// Resolve handles POST /api/confirm/{id}. An accept consumes the prompt and
// runs its action; a decline consumes it and does nothing. Resolving a
// prompt that was replaced by a newer one is a conflict, and the action the
// stale prompt guarded must not run.
func (h *ConfirmHandlers) Resolve(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	confirmID := r.PathValue("id")

	var req resolveConfirmRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if !req.Accepted {
		if err := h.Confirms.Decline(r.Context(), sess.ID, confirmID); err != nil {
			WriteError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "declined"})
		return
	}

	confirm, err := h.Confirms.Accept(r.Context(), sess.ID, confirmID)
	if err != nil {
		if errors.Is(err, service.ErrConfirmMismatch) {
			WriteError(w, apperrors.Conflict("confirmation is no longer pending"))
			return
		}
		WriteError(w, err)
		return
	}

	if err := h.dispatch(r, sess, confirm.Action); err != nil {
		h.Flash.Error(r.Context(), sess.ID, failureMessage(confirm.Action))
		WriteError(w, err)
		return
	}

	h.Flash.Success(r.Context(), sess.ID, successMessage(confirm.Action))
	WriteJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// dispatch runs the deferred backend call encoded in the action.
func (h *ConfirmHandlers) dispatch(r *http.Request, sess domainauth.Session, action string) error {
	verb, rawID, ok := strings.Cut(action, ":")
	if !ok {
		return apperrors.Internalf("malformed confirm action %q", action)
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return apperrors.Internalf("malformed confirm action %q", action)
	}

	switch verb {
	case actionDeleteWishlist:
		return h.Wishlists.Delete(r.Context(), sess, id)
	case actionDeleteItem:
		return h.Items.Delete(r.Context(), sess, id)
	case actionDeleteShare:
		return h.Shares.Delete(r.Context(), sess, id)
	default:
		return apperrors.Internalf("unknown confirm action %q", verb)
	}
}

func subjectOf(action string) string {
	verb, _, _ := strings.Cut(action, ":")
	subject, _, _ := strings.Cut(verb, ".")
	return subject
}

func successMessage(action string) string {
	return fmt.Sprintf("The %s was deleted.", subjectOf(action))
}

func failureMessage(action string) string {
	return fmt.Sprintf("Deleting the %s failed.", subjectOf(action))
}
