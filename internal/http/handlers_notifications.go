package httpx

import (
	"net/http"

	"github.com/wisherr/wisherr-ui/internal/service"
)

// NotificationHandlers provides HTTP handlers for backend notifications.
type NotificationHandlers struct {
	Svc *service.NotificationService
}

// List handles GET /api/notifications.
func (h *NotificationHandlers) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	notifications, err := h.Svc.List(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

// UnreadCount handles GET /api/notifications/unread-count. Polled by the
// frontend for the badge.
func (h *NotificationHandlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	count, err := h.Svc.UnreadCount(r.Context(), sess)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, count)
}

type markReadRequest struct {
	IDs []int64 `json:"ids"`
}

// MarkRead handles POST /api/notifications/mark-read.
func (h *NotificationHandlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	var req markReadRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.MarkRead(r.Context(), sess, req.IDs); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "marked"})
}

// MarkAllRead handles POST /api/notifications/mark-all-read.
func (h *NotificationHandlers) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	if err := h.Svc.MarkAllRead(r.Context(), sess); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "marked"})
}
