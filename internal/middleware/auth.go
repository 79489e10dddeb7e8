package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SAQIB-dev7447/SmartCampus/internal/config"
	"github.com/SAQIB-dev7447/SmartCampus/internal/models"
	"github.com/SAQIB-dev7447/SmartCampus/internal/utils"
)

type ctxKey string

const ctxActor ctxKey = "actor"

// ActorFrom returns the authenticated actor, or false when the request is
// anonymous.
func ActorFrom(ctx context.Context) (models.Actor, bool) {
	a, ok := ctx.Value(ctxActor).(models.Actor)
	return a, ok
}

// WithActor returns ctx carrying the actor. WithAuth uses it after resolving
// the session; handler tests use it directly.
func WithActor(ctx context.Context, a models.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, a)
}

// WithAuth resolves the session and attaches the actor to the request
// context. Reads the JWT from the "session" cookie or a bearer header;
// requests without a valid session pass through anonymous.
func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				// clear broken/expired cookie so it stops being sent
				http.SetCookie(w, &http.Cookie{
					Name:     "session",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					MaxAge:   -1,
				})
				next.ServeHTTP(w, r)
				return
			}

			actor := models.Actor{
				ID:         claims.UserID(),
				Role:       claims.Role,
				Department: claims.Department,
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
