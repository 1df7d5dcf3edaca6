package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireReservation configures the customer-side booking routes and the
// provider-side transition routes.
func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Customer bookings.
	r.With(middleware.Actor(repo.User, log)).Route("/api/reservations", func(r chi.Router) {
		r.Post("/", reservationHandler.Create)
		r.Get("/", reservationHandler.ListMine)
		r.Get("/history", reservationHandler.History)
		r.Get("/{id}", reservationHandler.Get)
		r.Put("/{id}", reservationHandler.Update)
		r.Put("/{id}/cancel", reservationHandler.Cancel)
	})

	// Provider transitions on received reservations.
	r.With(
		middleware.Actor(repo.User, log),
		middleware.RequireRole(log, entity.RoleProvider, entity.RoleAdmin),
	).Route("/api/provider/reservations", func(r chi.Router) {
		r.Get("/", reservationHandler.ListReceived)
		r.Put("/{id}/confirm", reservationHandler.Confirm)
		r.Put("/{id}/reject", reservationHandler.Reject)
		r.Put("/{id}/complete", reservationHandler.Complete)
	})
}
