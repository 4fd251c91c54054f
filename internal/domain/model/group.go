package model

import "time"

// Group is a user-owned collection of members that shares can target.
type Group struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MemberCount int       `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GroupMember is one membership row.
type GroupMember struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	AddedAt  time.Time `json:"added_at"`
}

// GroupInput carries the fields for create/update calls.
type GroupInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
