package model

import "time"

// AdminUser is a user row from the admin listing, including fields hidden
// from the regular profile endpoints.
type AdminUser struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// AdminUserInput carries the fields for admin user create/update calls.
type AdminUserInput struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	IsAdmin  *bool  `json:"is_admin,omitempty"`
}

// ConfigEntry is one site configuration key/value pair.
type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ActivityLog is one audit log row from the admin logs endpoint.
type ActivityLog struct {
	ID         int64     `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	ActionType string    `json:"action_type"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SiteStats is the aggregate counters payload for the admin dashboard.
type SiteStats struct {
	Users     int `json:"users"`
	Wishlists int `json:"wishlists"`
	Items     int `json:"items"`
	Shares    int `json:"shares"`
}
