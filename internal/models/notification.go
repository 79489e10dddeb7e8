package models

import "time"

// Notification is an append-only event record directed at one user. It is
// created only as a side effect of issue lifecycle events or privileged
// comments, and the only mutation ever applied is is_read false -> true.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	IssueID   *int64    `json:"issueId,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
