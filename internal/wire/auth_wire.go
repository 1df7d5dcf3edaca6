package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures registration, login, and profile routes.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Open to guests.
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Profile routes need a resolved actor.
	r.With(middleware.Actor(repo.User, log)).Route("/api/users/me", func(r chi.Router) {
		r.Get("/", authHandler.Profile)
		r.Put("/", authHandler.UpdateProfile)
	})
}
