package middleware

import (
	"net/http"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor resolves the caller identity from the X-User-ID header and stores the
// user row in the request context. The header is set by the gateway after
// authentication; this layer never sees raw credentials.
func Actor(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-User-ID")
			if header == "" {
				utils.ResponseUnauthorized(w, "Not logged in")
				return
			}

			userID, err := uuid.Parse(header)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid user ID")
				return
			}

			actor, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve actor",
					zap.Error(err),
					zap.String("user_id", header))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if actor == nil {
				utils.ResponseUnauthorized(w, "User does not exist")
				return
			}

			ctx := utils.SetActorContext(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to the given roles. It must run after Actor.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := utils.GetActorFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if _, ok := allowed[actor.Role]; !ok {
				logger.Warn("Role check failed",
					zap.String("user_id", actor.ID.String()),
					zap.String("role", string(actor.Role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
