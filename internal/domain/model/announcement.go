package model

import "time"

// Announcement is an admin-published notice targeted at employees.
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	TargetUsers []string  `json:"targetUsers,omitempty"`
	ExpiresAt   string    `json:"expiresAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}
