package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlotsDefaultWindow(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	service := env.addService(provider)

	resp, err := svc.AvailableSlots(context.Background(), service.ID.String(), "2026-09-01")
	require.NoError(t, err)

	// Default working hours are 09:00 to 18:00, one slot per hour.
	require.Len(t, resp.AvailableSlots, 9)
	assert.Equal(t, "09:00", resp.AvailableSlots[0])
	assert.Equal(t, "17:00", resp.AvailableSlots[8])
	assert.Equal(t, "09:00 - 18:00", resp.WorkingHours)
}

func TestAvailableSlotsExcludesBookedHours(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	env.addReservation(customer, service, day.Add(10*time.Hour), entity.ReservationStatusPending)
	env.addReservation(customer, service, day.Add(14*time.Hour), entity.ReservationStatusConfirmed)

	resp, err := svc.AvailableSlots(context.Background(), service.ID.String(), "2026-09-01")
	require.NoError(t, err)

	assert.Len(t, resp.AvailableSlots, 7)
	assert.NotContains(t, resp.AvailableSlots, "10:00")
	assert.NotContains(t, resp.AvailableSlots, "14:00")
	assert.Contains(t, resp.AvailableSlots, "11:00")
}

func TestAvailableSlotsCanceledReservationFreesSlot(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	env.addReservation(customer, service, day.Add(10*time.Hour), entity.ReservationStatusCanceled)

	resp, err := svc.AvailableSlots(context.Background(), service.ID.String(), "2026-09-01")
	require.NoError(t, err)

	assert.Contains(t, resp.AvailableSlots, "10:00")
}

func TestAvailableSlotsCustomWindow(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	service := env.addService(provider)

	start, end := 8, 12
	service.WorkingHoursStart = &start
	service.WorkingHoursEnd = &end

	resp, err := svc.AvailableSlots(context.Background(), service.ID.String(), "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, resp.AvailableSlots)
}

func TestAvailableSlotsInvertedWindowYieldsNone(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	service := env.addService(provider)

	// An inverted window stored by older data must degrade to an empty
	// slot list instead of failing the request.
	start, end := 20, 8
	service.WorkingHoursStart = &start
	service.WorkingHoursEnd = &end

	resp, err := svc.AvailableSlots(context.Background(), service.ID.String(), "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableSlots)
}

func TestAvailableSlotsUnknownService(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	_, err := svc.AvailableSlots(context.Background(), "3f1b6a1e-0000-4000-8000-000000000000", "2026-09-01")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	env := newTestEnv()
	svc := NewAvailabilityService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	service := env.addService(provider)

	_, err := svc.AvailableSlots(context.Background(), service.ID.String(), "01-09-2026")
	assert.ErrorIs(t, err, entity.ErrValidation)
}
