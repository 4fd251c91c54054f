package model

import "time"

// Notification is a backend-generated event for the current user
// (reservation on their list, new share, etc.).
type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationCount is the unread badge payload.
type NotificationCount struct {
	Unread int `json:"unread"`
}
