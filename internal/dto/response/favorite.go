package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type FavoriteResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	ServiceID string           `json:"service_id"`
	CreatedAt time.Time        `json:"created_at"`
	Service   *ServiceResponse `json:"service,omitempty"`
}

func FavoriteToResponse(favorite *entity.Favorite, service *entity.Service) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        favorite.ID.String(),
		UserID:    favorite.UserID.String(),
		ServiceID: favorite.ServiceID.String(),
		CreatedAt: favorite.CreatedAt,
	}
	if service != nil {
		serviceResp := ServiceToResponse(service)
		resp.Service = &serviceResp
	}
	return resp
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Total     int64              `json:"total"`
}

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
