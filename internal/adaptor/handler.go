package adaptor

import (
	"errors"
	"net/http"

	"service-booking/internal/data/entity"
	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Reservation  *ReservationHandler
	Review       *ReviewHandler
	Favorite     *FavoriteHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Catalog:      NewCatalogHandler(service.Catalog, service.Availability, log),
		Reservation:  NewReservationHandler(service.Reservation, log),
		Review:       NewReviewHandler(service.Review, log),
		Favorite:     NewFavoriteHandler(service.Favorite, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Admin:        NewAdminHandler(service.Admin, log),
	}
}

// handleServiceError maps domain errors to HTTP responses. Every handler
// funnels usecase failures through here.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" denied", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrDuplicate):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// actor pulls the authenticated user placed in the context by the middleware.
func actor(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	user, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return nil, false
	}
	return user, true
}

// optionalQuery returns a pointer to the query parameter, or nil when absent.
func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}
