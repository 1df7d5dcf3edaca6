package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	Base
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	Category     string  `db:"category"`
	Price        float64 `db:"price"`
	Duration     int     `db:"duration_minutes"`
	Availability *string `db:"availability"`
	// Whole hours 0-23. Both must be set for the window to apply.
	WorkingHoursStart *int      `db:"working_hours_start"`
	WorkingHoursEnd   *int      `db:"working_hours_end"`
	ImageURL          *string   `db:"image_url"`
	ProviderID        uuid.UUID `db:"provider_id"`
}

// WorkingWindow returns the booking window [start, end) in whole hours,
// falling back to 09:00-18:00 when the service has no explicit hours.
func (s *Service) WorkingWindow() (int, int) {
	if s.WorkingHoursStart != nil && s.WorkingHoursEnd != nil {
		return *s.WorkingHoursStart, *s.WorkingHoursEnd
	}
	return 9, 18
}

// WorkingHoursLabel formats the resolved window as "HH:00 - HH:00".
func (s *Service) WorkingHoursLabel() string {
	start, end := s.WorkingWindow()
	return fmt.Sprintf("%02d:00 - %02d:00", start, end)
}
