package httpx

import (
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/domain/model"
	"github.com/wisherr/wisherr-ui/internal/service"
)

// AdminHandlers provides HTTP handlers for instance administration. Routes
// are registered behind RequireAdmin; the service re-checks the flag anyway.
type AdminHandlers struct {
	Svc *service.AdminService
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	users, err := h.Svc.ListUsers(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"users": users})
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var in model.AdminUserInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	user, err := h.Svc.CreateUser(r.Context(), sess, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/admin/users/{id}.
func (h *AdminHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var in model.AdminUserInput
	if !DecodeJSON(w, r, &in) {
		return
	}

	user, err := h.Svc.UpdateUser(r.Context(), sess, userID, in)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/admin/users/{id}. Self-deletion is a
// conflict; the instance must keep a live admin.
func (h *AdminHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.Svc.DeleteUser(r.Context(), sess, userID); err != nil {
		WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetConfig handles GET /api/admin/config.
func (h *AdminHandlers) GetConfig(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	entries, err := h.Svc.GetConfig(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"config": entries})
}

// UpdateConfig handles PUT /api/admin/config.
func (h *AdminHandlers) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var entry model.ConfigEntry
	if !DecodeJSON(w, r, &entry) {
		return
	}

	if err := h.Svc.UpdateConfig(r.Context(), sess, entry); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// ListLogs handles GET /api/admin/logs with limit/offset paging.
func (h *AdminHandlers) ListLogs(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	limit, offset := ParseLimitOffset(r, 50, 500)
	logs, err := h.Svc.ListLogs(r.Context(), sess, limit, offset)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"logs": logs, "limit": limit, "offset": offset})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	stats, err := h.Svc.Stats(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
