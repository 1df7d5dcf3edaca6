package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID              string    `json:"id"`
	Datetime        time.Time `json:"datetime"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	ProblemImageURL *string   `json:"problem_image_url,omitempty"`
	CustomerID      string    `json:"customer_id"`
	ProviderID      string    `json:"provider_id"`
	ServiceID       string    `json:"service_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              reservation.ID.String(),
		Datetime:        reservation.ScheduledAt,
		Status:          string(reservation.Status),
		Notes:           reservation.Notes,
		ProblemImageURL: reservation.ProblemImageURL,
		CustomerID:      reservation.CustomerID.String(),
		ProviderID:      reservation.ProviderID.String(),
		ServiceID:       reservation.ServiceID.String(),
		CreatedAt:       reservation.CreatedAt,
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		out[i] = ReservationToResponse(reservation)
	}
	return out
}

type ReservationHistoryResponse struct {
	History    []ReservationResponse `json:"history"`
	TotalCount int                   `json:"total_count"`
}
