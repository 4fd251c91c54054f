package notify

// Package notify contains domain types for the per-session notification
// layer: the toast queue and the single-slot confirm primitive.

import "time"

// ToastType categorizes a toast entry.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// DefaultAutoClose is how long non-error toasts stay visible.
const DefaultAutoClose = 5 * time.Second

// Toast is one entry of a session's toast queue. Entries auto-dismiss after
// AutoClose, except errors: failures require acknowledgment, so an error
// toast persists until the user dismisses it or files a report.
type Toast struct {
	ID          string    `json:"id"`
	Type        ToastType `json:"type"`
	Message     string    `json:"message"`
	RequestPath string    `json:"request_path,omitempty"`
	AutoClose   bool      `json:"auto_close"`
	CreatedAt   time.Time `json:"created_at"`
}

// Expired reports whether the toast has outlived its auto-close window.
// Error toasts never expire.
func (t Toast) Expired(now time.Time) bool {
	if !t.AutoClose {
		return false
	}
	return now.After(t.CreatedAt.Add(DefaultAutoClose))
}

// NewToast builds a toast of the given type. Errors are marked persistent.
func NewToast(id string, kind ToastType, message string) Toast {
	return Toast{
		ID:        id,
		Type:      kind,
		Message:   message,
		AutoClose: kind != ToastError,
		CreatedAt: time.Now().UTC(),
	}
}

// Confirm is a pending confirmation request. Each session holds at most one:
// a second request overwrites the first (single slot, not a queue), so a
// caller must never assume its prompt is still the pending one without
// matching IDs.
type Confirm struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
