package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/SAQIB-dev7447/SmartCampus/internal/middleware"
	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository"
	"github.com/SAQIB-dev7447/SmartCampus/internal/service"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

const maxUploadBytes = 16 << 20

var allowedUploadExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".pdf": true,
}

type IssueHTTP struct {
	svc       *service.IssueService
	issues    repository.IssueRepository
	uploadDir string
}

func NewIssueHTTP(svc *service.IssueService, issues repository.IssueRepository, uploadDir string) *IssueHTTP {
	return &IssueHTTP{svc: svc, issues: issues, uploadDir: uploadDir}
}

// POST /api/issues — multipart form so an image can ride along.
func (h *IssueHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid form")
			return
		}

		imagePath, err := h.saveUpload(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		issue, err := h.svc.Create(r.Context(), actor.ID, service.IssueInput{
			Title:       r.FormValue("title"),
			Category:    r.FormValue("category"),
			Description: r.FormValue("description"),
			Location:    r.FormValue("location"),
			Priority:    r.FormValue("priority"),
			ImagePath:   imagePath,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, issue)
	}
}

// saveUpload stores an optional attached image and returns its relative path.
// Unknown extensions are rejected; a missing file is fine.
func (h *IssueHTTP) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExt[ext] {
		return "", fmt.Errorf("%w: unsupported file type %s", service.ErrValidation, ext)
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "uploads/" + name, nil
}

// GET /api/issues?status=&category=&limit=&offset=
// Students only ever see their own issues; admin/staff see everything.
func (h *IssueHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		qv := r.URL.Query()

		f := repository.IssueFilter{
			Status:   strings.TrimSpace(qv.Get("status")),
			Category: strings.TrimSpace(qv.Get("category")),
			Limit:    utils.QueryInt(qv, "limit", 50),
			Offset:   utils.QueryInt(qv, "offset", 0),
		}
		if !actor.Role.Privileged() {
			f.ReporterID = actor.ID
		}

		items, err := h.issues.List(r.Context(), f)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/issues/{id} — detail view; visiting it marks the viewer's
// notifications for this issue as read.
func (h *IssueHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		id, err := issueID(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		issue, err := h.svc.Detail(r.Context(), actor, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, issue)
	}
}

// PATCH /api/issues/{id} — status and/or assignment transition.
func (h *IssueHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Status     *string `json:"status"`
		AssignedTo *string `json:"assignedTo"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		id, err := issueID(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}

		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		var upd service.IssueUpdate
		if in.Status != nil {
			st, err := models.ParseStatus(*in.Status)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			upd.Status = &st
		}
		if in.AssignedTo != nil {
			a := strings.TrimSpace(*in.AssignedTo)
			upd.Assignee = &a
		}

		changed, err := h.svc.Update(r.Context(), actor, id, upd)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]bool{"updated": changed})
	}
}

// POST /api/issues/{id}/comments
func (h *IssueHTTP) AddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, _ := middleware.ActorFrom(r.Context())
		id, err := issueID(r)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid id")
			return
		}
		var in struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		c, err := h.svc.AddComment(r.Context(), actor, id, in.Content)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, c)
	}
}

func issueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
