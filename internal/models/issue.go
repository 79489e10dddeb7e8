package models

import "time"

type Issue struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	ImagePath   string     `json:"imagePath,omitempty"`
	ReporterID  int64      `json:"reporterId"`
	AssignedTo  string     `json:"assignedTo,omitempty"` // free-text staff name, not a FK
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`

	// joined fields, populated on detail reads
	ReporterName  string    `json:"reporterName,omitempty"`
	ReporterEmail string    `json:"reporterEmail,omitempty"`
	Comments      []Comment `json:"comments,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	IssueID   int64     `json:"issueId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`

	// joined author fields
	AuthorName string `json:"authorName,omitempty"`
	AuthorRole Role   `json:"authorRole,omitempty"`
}
