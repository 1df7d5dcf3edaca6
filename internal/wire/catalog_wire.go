package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog configures the public catalog routes and the provider-side
// service management routes.
func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public catalog, open to guests.
	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", catalogHandler.List)
		r.Get("/search", catalogHandler.Search)
		r.Get("/{id}", catalogHandler.Get)
		r.Get("/{id}/slots", catalogHandler.AvailableSlots)
		r.Get("/{id}/reviews", reviewHandler.ListByService)
		r.Get("/{id}/rating", reviewHandler.ServiceRating)
	})

	// Provider catalog management.
	r.With(
		middleware.Actor(repo.User, log),
		middleware.RequireRole(log, entity.RoleProvider, entity.RoleAdmin),
	).Route("/api/provider/services", func(r chi.Router) {
		r.Get("/", catalogHandler.ListMine)
		r.Post("/", catalogHandler.Create)
		r.Put("/{id}", catalogHandler.Update)
		r.Delete("/{id}", catalogHandler.Delete)
		r.Put("/{id}/availability", catalogHandler.SetAvailability)
	})
}
