package http

import (
	"context"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/model"
	"github.com/golang-jwt/jwt/v5"
	"log/slog"
	"net/http"
	"strings"
)

type actorCtxKey struct{}

// ActorClaims is the access token payload issued by the auth service.
type ActorClaims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies an HS256 bearer token and stores the caller as model.Actor in the request context.
func AuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
				return
			}

			var claims ActorClaims
			_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || claims.UserID <= 0 {
				slog.DebugContext(r.Context(), "reject bearer token", slog.Any(constant.LogFieldErr, err))
				writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), actorCtxKey{}, model.Actor{UserID: claims.UserID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrganizerOnly must run behind AuthMiddleware.
func OrganizerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
			return
		}

		if actor.Role != constant.RoleOrganizer {
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusForbidden, Message: "Organizer access required"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func actorFromContext(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(model.Actor)
	return actor, ok
}
