package handlers

import (
	"net/http"

	"github.com/SAQIB-dev7447/SmartCampus/internal/middleware"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

type ReportsHTTP struct {
	issues repository.IssueRepository
	users  repository.UserRepository
}

func NewReportsHTTP(issues repository.IssueRepository, users repository.UserRepository) *ReportsHTTP {
	return &ReportsHTTP{issues: issues, users: users}
}

// GET /api/reports/me — the student dashboard numbers: own issue totals.
// Counted in SQL, so the numbers stay right however many issues the reporter
// has filed.
func (h *ReportsHTTP) MySummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		counts, err := h.issues.CountByStatus(r.Context(), actor.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		submitted, inProgress, resolved := repository.StatusTotals(counts)
		utils.JSON(w, http.StatusOK, map[string]int{
			"total":      submitted + inProgress + resolved,
			"inProgress": inProgress,
			"resolved":   resolved,
		})
	}
}

// GET /api/reports/summary — admin dashboard: status totals, staff workload
// and the staff list used by the assignment dropdown.
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.issues.CountByStatus(r.Context(), 0)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		workload, err := h.issues.StaffWorkload(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		staff, err := h.users.ListStaff(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		submitted, inProgress, resolved := repository.StatusTotals(counts)
		utils.JSON(w, http.StatusOK, map[string]any{
			"total":         submitted + inProgress + resolved,
			"submitted":     submitted,
			"inProgress":    inProgress,
			"resolved":      resolved,
			"staffWorkload": workload,
			"staff":         staff,
		})
	}
}

// GET /api/reports/analytics — category/status breakdowns, top locations and
// the KPI numbers (resolution rate, average resolution time).
func (h *ReportsHTTP) Analytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.issues.CountByCategory(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		counts, err := h.issues.CountByStatus(r.Context(), 0)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		topAreas, err := h.issues.TopLocations(r.Context(), 3)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		stats, err := h.issues.ResolutionStats(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		submitted, inProgress, resolved := repository.StatusTotals(counts)
		utils.JSON(w, http.StatusOK, map[string]any{
			"categories":         categories,
			"statuses":           map[string]int{"Submitted": submitted, "In Progress": inProgress, "Resolved": resolved},
			"topAreas":           topAreas,
			"total":              stats.Total,
			"resolvedToday":      stats.ResolvedToday,
			"activeCritical":     stats.ActiveHighPriority,
			"resolutionRate":     stats.ResolutionRate(),
			"avgResolutionHours": stats.AvgResolutionHours(),
		})
	}
}
