package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkingWindowDefaults(t *testing.T) {
	var service Service
	start, end := service.WorkingWindow()
	assert.Equal(t, 9, start)
	assert.Equal(t, 18, end)
	assert.Equal(t, "09:00 - 18:00", service.WorkingHoursLabel())

	s, e := 7, 13
	service.WorkingHoursStart = &s
	service.WorkingHoursEnd = &e
	start, end = service.WorkingWindow()
	assert.Equal(t, 7, start)
	assert.Equal(t, 13, end)
	assert.Equal(t, "07:00 - 13:00", service.WorkingHoursLabel())
}

func TestReservationStatusHelpers(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsActive())
	assert.True(t, ReservationStatusConfirmed.IsActive())
	assert.False(t, ReservationStatusCanceled.IsActive())
	assert.False(t, ReservationStatusCompleted.IsActive())

	assert.True(t, ReservationStatusCanceled.IsTerminal())
	assert.True(t, ReservationStatusCompleted.IsTerminal())
	assert.False(t, ReservationStatusPending.IsTerminal())

	_, ok := ParseReservationStatus("Pending")
	assert.True(t, ok)
	_, ok = ParseReservationStatus("pending")
	assert.False(t, ok)
}

func TestReservationNotificationContent(t *testing.T) {
	title, message := ReservationNotificationContent(NotificationReservationConfirmed, "Pipe repair")
	assert.Equal(t, "Reservation confirmed", title)
	assert.Contains(t, message, "Pipe repair")

	title, _ = ReservationNotificationContent(NotificationSystem, "x")
	assert.Equal(t, "Notification", title)
}
