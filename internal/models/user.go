package models

import "time"

type User struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"fullname"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department,omitempty"` // staff only: the category they handle
	CreatedAt  time.Time `json:"createdAt"`
}

// Actor is the authenticated identity attached to a request, resolved from the
// session by the auth middleware.
type Actor struct {
	ID         int64
	Role       Role
	Department string
}
