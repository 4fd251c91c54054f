package httpx

import (
	"fmt"
	"net/http"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// sessionOrError fetches the session the guard placed in context. Handlers
// behind RequireAuth always find one; the check keeps unguarded wiring from
// panicking.
func sessionOrError(w http.ResponseWriter, r *http.Request) (domainauth.Session, bool) {
	sess, ok := SessionFrom(r.Context())
	if !ok {
		WriteError(w, errUnauthenticated)
		return domainauth.Session{}, false
	}
	return sess, true
}

// WishlistHandlers provides HTTP handlers for wishlist CRUD and
// collaborator management. Deletion is confirm-gated: the DELETE endpoint
// only raises a confirmation prompt; the backend call happens when the
// prompt is accepted.
type WishlistHandlers struct {
	Svc      *service.WishlistService
	Confirms *service.ConfirmService
}

// List handles GET /api/wishlists. The ?scope=mine query narrows to owned
// lists; the default view carries every visible list with roles.
func (h *WishlistHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var (
		views []model.WishlistView
		err   error
	)
	if r.URL.Query().Get("scope") == "mine" {
		views, err = h.Svc.ListMine(r.Context(), sess)
	} else {
		views, err = h.Svc.ListWithRoles(r.Context(), sess)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"wishlists": views})
}

// Get handles GET /api/wishlists/{id}.
func (h *WishlistHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.Svc.Get(r.Context(), sess, id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// Create handles POST /api/wishlists.
func (h *WishlistHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var in model.WishlistInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	view, err := h.Svc.Create(r.Context(), sess, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, view)
}

// Update handles PUT /api/wishlists/{id}.
func (h *WishlistHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in model.WishlistInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	view, err := h.Svc.Update(r.Context(), sess, id, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// Delete handles DELETE /api/wishlists/{id}. No backend call happens here:
// a confirmation is queued and returned with 202, and the delete runs when
// the confirm endpoint receives an accept for it.
func (h *WishlistHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	confirm, err := h.Confirms.Request(r.Context(), sess.ID,
		"Delete wishlist",
		"This removes the wishlist and all of its items. This cannot be undone.",
		fmt.Sprintf("%s:%d", actionDeleteWishlist, id))
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, map[string]any{"confirm": confirm})
}

// Collaborators handles GET /api/wishlists/{id}/collaborators.
func (h *WishlistHandlers) Collaborators(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	collabs, err := h.Svc.Collaborators(r.Context(), sess, id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"collaborators": collabs})
}

type collaboratorRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AddCollaborator handles POST /api/wishlists/{id}/collaborators.
func (h *WishlistHandlers) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req collaboratorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.AddCollaborator(r.Context(), sess, id, req.Username, req.Role); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// UpdateCollaborator handles PUT /api/wishlists/{id}/collaborators/{collabID}.
func (h *WishlistHandlers) UpdateCollaborator(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	collabID, err := pathID(r, "collabID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req collaboratorRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.UpdateCollaborator(r.Context(), sess, id, collabID, req.Role); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// RemoveCollaborator handles DELETE /api/wishlists/{id}/collaborators/{collabID}.
// Revoking a grant is routine, not destructive, so it is not confirm-gated.
func (h *WishlistHandlers) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	collabID, err := pathID(r, "collabID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Svc.RemoveCollaborator(r.Context(), sess, id, collabID); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type transferOwnerRequest struct {
	NewOwnerID int64 `json:"new_owner_id"`
}

// TransferOwner handles POST /api/wishlists/{id}/transfer.
func (h *WishlistHandlers) TransferOwner(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req transferOwnerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.TransferOwner(r.Context(), sess, id, req.NewOwnerID); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "transferred"})
}
