package request

type CreateReviewRequest struct {
	ServiceID string  `json:"service_id" validate:"required,uuid"`
	Rating    int     `json:"rating" validate:"required"`
	Comment   *string `json:"comment"`
}
