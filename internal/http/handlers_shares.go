package httpx

import (
	"fmt"
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
	apperrors "github.com/wisherr/wisherr-ui/internal/errors"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// ShareHandlers provides HTTP handlers for share management and the
// anonymous public share flow.
type ShareHandlers struct {
	Svc      *service.ShareService
	Confirms *service.ConfirmService
}

// List handles GET /api/shares.
func (h *ShareHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	shares, err := h.Svc.List(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"shares": shares})
}

// SharedWithMe handles GET /api/shares/shared-with-me.
func (h *ShareHandlers) SharedWithMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	shared, err := h.Svc.SharedWithMe(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"shared": shared})
}

type createShareRequest struct {
	model.ShareInput
	ShareType string `json:"share_type"`
}

// Create handles POST /api/shares. share_type selects between an internal
// grant (to a user or group) and an external tokenized link.
func (h *ShareHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var req createShareRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var (
		share model.Share
		err   error
	)
	switch req.ShareType {
	case model.ShareTypeExternal:
		share, err = h.Svc.CreateExternal(r.Context(), sess, req.ShareInput)
	case model.ShareTypeInternal, "":
		share, err = h.Svc.CreateInternal(r.Context(), sess, req.ShareInput)
	default:
		err = apperrors.ValidationField("share_type", fmt.Sprintf("unknown share type %q", req.ShareType))
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, share)
}

// Toggle handles POST /api/shares/{id}/toggle, flipping active state.
func (h *ShareHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	shareID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	share, err := h.Svc.Toggle(r.Context(), sess, shareID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, share)
}

type sharePermissionRequest struct {
	Permission string `json:"permission"`
}

// UpdatePermission handles PUT /api/shares/{id}/permission.
func (h *ShareHandlers) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	shareID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req sharePermissionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.UpdatePermission(r.Context(), sess, shareID, req.Permission); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

type sharePasswordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword handles PUT /api/shares/{id}/password. An empty password
// removes the challenge.
func (h *ShareHandlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	shareID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req sharePasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.UpdatePassword(r.Context(), sess, shareID, req.Password); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /api/shares/{id}. Confirm-gated: revoking a share
// can lock out an entire group at once.
func (h *ShareHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	shareID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	confirm, err := h.Confirms.Request(r.Context(), sess.ID,
		"Revoke share",
		"Everyone using this share loses access immediately.",
		fmt.Sprintf("%s:%d", actionDeleteShare, shareID))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"confirm": confirm})
}

// PublicInfo handles GET /shared/{token}. No auth: this is the anonymous
// landing view, which tells the frontend whether a password is required.
func (h *ShareHandlers) PublicInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Svc.PublicInfo(r.Context(), r.PathValue("token"))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, info)
}

type publicAccessRequest struct {
	Password string `json:"password,omitempty"`
}

// PublicAccess handles POST /shared/{token}/access. The password challenge
// is the backend's; a wrong password comes back with its original status.
func (h *ShareHandlers) PublicAccess(w http.ResponseWriter, r *http.Request) {
	var req publicAccessRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	wishlist, err := h.Svc.PublicAccess(r.Context(), r.PathValue("token"), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, wishlist)
}

type guestActionRequest struct {
	GuestName string `json:"guest_name"`
}

// PublicReserve handles POST /shared/{token}/items/{id}/reserve for
// anonymous guests.
func (h *ShareHandlers) PublicReserve(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req guestActionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.PublicReserve(r.Context(), r.PathValue("token"), itemID, req.GuestName); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "reserved"})
}

// PublicPurchase handles POST /shared/{token}/items/{id}/purchase for
// anonymous guests.
func (h *ShareHandlers) PublicPurchase(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req guestActionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.PublicPurchase(r.Context(), r.PathValue("token"), itemID, req.GuestName); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "purchased"})
}
