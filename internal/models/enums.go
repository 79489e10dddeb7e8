package models

import "fmt"

// Role is the access level of a user account. Roles are fixed at signup/seed
// time; no route mutates them afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleStaff, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// Privileged reports whether the role may triage issues (status/assignment).
func (r Role) Privileged() bool { return r == RoleStaff || r == RoleAdmin }

// Status of an issue. Any status may follow any other; there is no enforced
// ordering between them.
type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSubmitted, StatusInProgress, StatusResolved:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Priority of an issue.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// CatchAllDepartment receives issues of every category in addition to its own.
const CatchAllDepartment = "Others"

// Departments is the canonical staff department list, used for seeding and for
// the category dropdown. Categories are stored as free text either way.
var Departments = []string{"IT Support", "Infrastructure", "Cleanliness", "Safety", CatchAllDepartment}
