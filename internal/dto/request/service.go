package request

type CreateServiceRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	Category          string  `json:"category" validate:"required,max=50"`
	Description       *string `json:"description"`
	Price             float64 `json:"price" validate:"gte=0"`
	Duration          int     `json:"duration" validate:"omitempty,gt=0"`
	Availability      *string `json:"availability"`
	WorkingHoursStart *int    `json:"working_hours_start" validate:"omitempty,min=0,max=23"`
	WorkingHoursEnd   *int    `json:"working_hours_end" validate:"omitempty,min=0,max=23"`
	ImageURL          *string `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name              *string  `json:"name" validate:"omitempty,max=100"`
	Category          *string  `json:"category" validate:"omitempty,max=50"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	Duration          *int     `json:"duration" validate:"omitempty,gt=0"`
	Availability      *string  `json:"availability"`
	WorkingHoursStart *int     `json:"working_hours_start" validate:"omitempty,min=0,max=23"`
	WorkingHoursEnd   *int     `json:"working_hours_end" validate:"omitempty,min=0,max=23"`
	ImageURL          *string  `json:"image_url"`
}

type SetAvailabilityRequest struct {
	Availability      *string `json:"availability"`
	WorkingHoursStart *int    `json:"working_hours_start" validate:"omitempty,min=0,max=23"`
	WorkingHoursEnd   *int    `json:"working_hours_end" validate:"omitempty,min=0,max=23"`
}
