package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCanceled  ReservationStatus = "Canceled"
	ReservationStatusCompleted ReservationStatus = "Completed"
)

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCanceled, ReservationStatusCompleted:
		return ReservationStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transition is defined from the status.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCanceled || s == ReservationStatusCompleted
}

// IsActive reports whether the reservation occupies its time slot.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

type Reservation struct {
	Base
	ScheduledAt time.Time         `db:"scheduled_at"`
	Status      ReservationStatus `db:"status"`
	Notes       *string           `db:"notes"`
	// Optional photo of the problem, supplied by the customer at booking time.
	ProblemImageURL *string   `db:"problem_image_url"`
	CustomerID      uuid.UUID `db:"customer_id"`
	ProviderID      uuid.UUID `db:"provider_id"`
	ServiceID       uuid.UUID `db:"service_id"`
}
