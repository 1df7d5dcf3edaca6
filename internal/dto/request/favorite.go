package request

type AddFavoriteRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
}
