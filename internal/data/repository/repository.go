package repository

import (
	"service-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Service      ServiceRepository
	Reservation  ReservationRepository
	Review       ReviewRepository
	Favorite     FavoriteRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Favorite:     NewFavoriteRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
