package httpx

import (
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// GroupHandlers provides HTTP handlers for sharing groups and membership.
type GroupHandlers struct {
	Svc *service.GroupService
}

// List handles GET /api/groups.
func (h *GroupHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	groups, err := h.Svc.List(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// Create handles POST /api/groups.
func (h *GroupHandlers) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var in model.GroupInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	group, err := h.Svc.Create(r.Context(), sess, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, group)
}

// Update handles PUT /api/groups/{id}.
func (h *GroupHandlers) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in model.GroupInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	group, err := h.Svc.Update(r.Context(), sess, groupID, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /api/groups/{id}.
func (h *GroupHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), sess, groupID); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Members handles GET /api/groups/{id}/members.
func (h *GroupHandlers) Members(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	members, err := h.Svc.Members(r.Context(), sess, groupID)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"members": members})
}

type addMemberRequest struct {
	Username string `json:"username"`
}

// AddMember handles POST /api/groups/{id}/members.
func (h *GroupHandlers) AddMember(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addMemberRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.AddMember(r.Context(), sess, groupID, req.Username); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// RemoveMember handles DELETE /api/groups/{id}/members/{memberID}.
func (h *GroupHandlers) RemoveMember(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	groupID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	memberID, err := pathID(r, "memberID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Svc.RemoveMember(r.Context(), sess, groupID, memberID); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
