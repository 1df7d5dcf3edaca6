package usecase

import (
	"service-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Catalog      CatalogService
	Reservation  ReservationService
	Availability AvailabilityService
	Review       ReviewService
	Favorite     FavoriteService
	Notification NotificationService
	Admin        AdminService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, log),
		Catalog:      NewCatalogService(repo, log),
		Reservation:  NewReservationService(repo, log),
		Availability: NewAvailabilityService(repo, log),
		Review:       NewReviewService(repo, log),
		Favorite:     NewFavoriteService(repo, log),
		Notification: NewNotificationService(repo, log),
		Admin:        NewAdminService(repo, log),
	}
}
