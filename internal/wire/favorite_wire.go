package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireFavorite configures the bookmark routes.
func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.Actor(repo.User, log)).Route("/api/favorites", func(r chi.Router) {
		r.Get("/", favoriteHandler.List)
		r.Post("/", favoriteHandler.Add)
		r.Delete("/{serviceID}", favoriteHandler.Remove)
		r.Get("/{serviceID}/check", favoriteHandler.Check)
	})
}
