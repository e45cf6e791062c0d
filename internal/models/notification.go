package models

import (
	"encoding/json"
	"time"
)

type Notification struct {
	ID         int             `json:"id"`
	UserID     *int            `json:"user_id"`
	UserName   *string         `json:"user_name,omitempty"` // joined from users
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Type       string          `json:"type"`
	IsRead     bool            `json:"is_read"`
	IsArchived bool            `json:"is_archived"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NotificationFilter narrows the list query; UserID nil means all users
// (admin only).
type NotificationFilter struct {
	UserID          *int
	Limit           int
	Offset          int
	IncludeArchived bool
}
