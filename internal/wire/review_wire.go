package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReview configures review submission and the provider rating route.
// Per-service review listing lives with the public catalog routes.
func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.Actor(repo.User, log)).Route("/api/reviews", func(r chi.Router) {
		r.Post("/", reviewHandler.Create)
		r.Get("/mine", reviewHandler.ListMine)
		r.Delete("/{id}", reviewHandler.Delete)
	})

	r.With(
		middleware.Actor(repo.User, log),
		middleware.RequireRole(log, entity.RoleProvider, entity.RoleAdmin),
	).Get("/api/provider/rating", reviewHandler.ProviderRating)
}
