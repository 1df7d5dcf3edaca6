package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Duration     int       `json:"duration_minutes"`
	Availability *string   `json:"availability,omitempty"`
	WorkingHours string    `json:"working_hours"`
	ImageURL     *string   `json:"image_url,omitempty"`
	ProviderID   string    `json:"provider_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:           service.ID.String(),
		Name:         service.Name,
		Description:  service.Description,
		Category:     service.Category,
		Price:        service.Price,
		Duration:     service.Duration,
		Availability: service.Availability,
		WorkingHours: service.WorkingHoursLabel(),
		ImageURL:     service.ImageURL,
		ProviderID:   service.ProviderID.String(),
		CreatedAt:    service.CreatedAt,
	}
}

func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, service := range services {
		out[i] = ServiceToResponse(service)
	}
	return out
}

type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"service_id"`
	DurationMinutes int      `json:"duration_minutes"`
	AvailableSlots  []string `json:"available_slots"`
	WorkingHours    string   `json:"working_hours"`
}
