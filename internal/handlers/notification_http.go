package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SAQIB-dev7447/SmartCampus/internal/middleware"
	"github.com/SAQIB-dev7447/SmartCampus/internal/service"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

type NotificationHTTP struct {
	svc *service.NotificationService
}

func NewNotificationHTTP(s *service.NotificationService) *NotificationHTTP {
	return &NotificationHTTP{svc: s}
}

// GET /api/notifications
func (h *NotificationHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		items, err := h.svc.ListForUser(r.Context(), actor.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/notifications/unread-count — badge query, fired on every page.
func (h *NotificationHTTP) UnreadCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		n, err := h.svc.UnreadCount(r.Context(), actor.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int{"unread": n})
	}
}

// POST /api/notifications/{id}/read
func (h *NotificationHTTP) MarkRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		if err := h.svc.MarkRead(r.Context(), actor.ID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /api/notifications/read-all
func (h *NotificationHTTP) MarkAllRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		n, err := h.svc.MarkAllRead(r.Context(), actor.ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]int64{"marked": n})
	}
}
