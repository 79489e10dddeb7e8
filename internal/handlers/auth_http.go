package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SAQIB-dev7447/SmartCampus/internal/middleware"
	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/service"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP { return &AuthHTTP{svc: s} }

// POST /api/auth/signup
func (h *AuthHTTP) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			FullName string `json:"fullname"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := h.svc.Register(r.Context(), in.FullName, in.Email, in.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, u)
	}
}

// POST /api/auth/login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.Role == "" {
			in.Role = string(models.RoleStudent)
		}
		role, err := models.ParseRole(in.Role)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		token, u, err := h.svc.Login(r.Context(), in.Email, in.Password, role)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusUnauthorized, "invalid email or password")
				return
			}
			writeServiceError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(24 * time.Hour),
		})
		utils.JSON(w, http.StatusOK, u)
	}
}

// POST /api/auth/logout
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := middleware.ActorFrom(r.Context())
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		u, err := h.svc.GetUser(r.Context(), actor.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, u)
	}
}
