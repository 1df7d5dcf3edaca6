package request

type CreateReservationRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	// RFC 3339 timestamp of the requested appointment.
	Datetime        string  `json:"datetime" validate:"required"`
	Notes           *string `json:"notes"`
	ProblemImageURL *string `json:"problem_image_url"`
}

type UpdateReservationRequest struct {
	Datetime        *string `json:"datetime"`
	Notes           *string `json:"notes"`
	ProblemImageURL *string `json:"problem_image_url"`
}
