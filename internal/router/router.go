package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/SAQIB-dev7447/SmartCampus/internal/config"
	"github.com/SAQIB-dev7447/SmartCampus/internal/handlers"
	"github.com/SAQIB-dev7447/SmartCampus/internal/middleware"
	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/repository/postgres"
	"github.com/SAQIB-dev7447/SmartCampus/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Store + services + handlers
	store := postgres.NewStore(db)
	repos := store.Repos()

	authSvc := service.NewAuthService(store, cfg.SessionSecret)
	issueSvc := service.NewIssueService(store, log)
	notifSvc := service.NewNotificationService(store)

	ah := handlers.NewAuthHTTP(authSvc)
	ih := handlers.NewIssueHTTP(issueSvc, repos.Issues, cfg.UploadDir)
	nh := handlers.NewNotificationHTTP(notifSvc)
	rh := handlers.NewReportsHTTP(repos.Issues, repos.Users)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", ah.Signup())
		r.Post("/login", ah.Login())
		r.Post("/logout", ah.Logout())
		r.With(middleware.RequireAuth).Get("/me", ah.Me())
	})

	r.Route("/api/issues", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", ih.List())
		r.Post("/", ih.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ih.Get())
			r.With(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff)).Patch("/", ih.Update())
			r.Post("/comments", ih.AddComment())
		})
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", nh.List())
		r.Get("/unread-count", nh.UnreadCount())
		r.Post("/read-all", nh.MarkAllRead())
		r.Post("/{id}/read", nh.MarkRead())
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", rh.MySummary())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Get("/summary", rh.Summary())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Get("/analytics", rh.Analytics())
	})

	return r
}
