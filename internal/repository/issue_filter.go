package repository

import (
	"time"

	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
)

type IssueFilter struct {
	Status     string
	Category   string
	ReporterID int64 // 0 = any; students are scoped to their own issues
	Limit      int
	Offset     int
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type StaffLoad struct {
	AssignedTo  string `json:"assignedTo"`
	ActiveCount int    `json:"activeCount"`
}

type ResolutionStats struct {
	Total              int           `json:"total"`
	Resolved           int           `json:"resolved"`
	ResolvedToday      int           `json:"resolvedToday"`
	ActiveHighPriority int           `json:"activeHighPriority"`
	AvgResolution      time.Duration `json:"-"`
}

// ResolutionRate is the share of all issues that reached Resolved, in percent.
func (s ResolutionStats) ResolutionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Resolved) / float64(s.Total) * 100
}

func (s ResolutionStats) AvgResolutionHours() float64 {
	return s.AvgResolution.Hours()
}

// StatusTotals flattens a status count map into the fixed dashboard order.
func StatusTotals(m map[models.Status]int) (submitted, inProgress, resolved int) {
	return m[models.StatusSubmitted], m[models.StatusInProgress], m[models.StatusResolved]
}
