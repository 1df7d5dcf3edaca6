package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures the platform administration routes. All of them
// require an admin actor.
func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.Actor(repo.User, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/users", adminHandler.ListUsers)
		r.Delete("/users/{id}", adminHandler.DeleteUser)
		r.Put("/users/{id}/role", adminHandler.ChangeRole)

		r.Get("/services", adminHandler.ListServices)
		r.Delete("/services/{id}", adminHandler.DeleteService)

		r.Get("/reservations", adminHandler.ListReservations)
		r.Delete("/reservations/{id}", adminHandler.DeleteReservation)

		r.Get("/reviews", adminHandler.ListReviews)
		r.Delete("/reviews/{id}", adminHandler.DeleteReview)

		r.Get("/categories", adminHandler.ListCategories)
		r.Put("/categories", adminHandler.RenameCategory)
		r.Delete("/categories/{name}", adminHandler.DeleteCategory)

		r.Get("/statistics", adminHandler.Statistics)
	})
}
