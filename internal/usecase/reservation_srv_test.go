package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCreateDerivesProviderFromService(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	req := &request.CreateReservationRequest{
		ServiceID: service.ID.String(),
		Datetime:  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}

	resp, err := svc.Create(context.Background(), customer, req)
	require.NoError(t, err)

	assert.Equal(t, provider.ID.String(), resp.ProviderID)
	assert.Equal(t, string(entity.ReservationStatusPending), resp.Status)

	// The provider gets a new-reservation notification.
	notifications, err := env.notifications.FindByUserID(context.Background(), provider.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationReservationNew, notifications[0].Type)
}

func TestReservationCreateUnknownService(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())
	customer := env.addUser(entity.RoleUser)

	req := &request.CreateReservationRequest{
		ServiceID: "3f1b6a1e-0000-4000-8000-000000000000",
		Datetime:  time.Now().Format(time.RFC3339),
	}

	_, err := svc.Create(context.Background(), customer, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestReservationCreateRejectsBadDatetime(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	req := &request.CreateReservationRequest{
		ServiceID: service.ID.String(),
		Datetime:  "tomorrow at noon",
	}

	_, err := svc.Create(context.Background(), customer, req)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestReservationCancelRequiresActiveStatus(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	completed := env.addReservation(customer, service, time.Now(), entity.ReservationStatusCompleted)
	_, err := svc.Cancel(context.Background(), customer, completed.ID.String())
	assert.ErrorIs(t, err, entity.ErrValidation)

	pending := env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)
	resp, err := svc.Cancel(context.Background(), customer, pending.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReservationStatusCanceled), resp.Status)

	// Cancellation notifies the provider.
	notifications, err := env.notifications.FindByUserID(context.Background(), provider.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationReservationCancelled, notifications[0].Type)
}

func TestReservationConfirmNotifiesCustomer(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)
	reservation := env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)

	resp, err := svc.Confirm(context.Background(), provider, reservation.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReservationStatusConfirmed), resp.Status)

	notifications, err := env.notifications.FindByUserID(context.Background(), customer.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationReservationConfirmed, notifications[0].Type)
}

func TestReservationProviderCannotTouchOthers(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	owner := env.addUser(entity.RoleProvider)
	intruder := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(owner)
	reservation := env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)

	_, err := svc.Confirm(context.Background(), intruder, reservation.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	// The reservation is untouched.
	stored, _ := env.reservations.FindByID(context.Background(), reservation.ID)
	assert.Equal(t, entity.ReservationStatusPending, stored.Status)
}

func TestReservationCustomerCannotSeeOthers(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	other := env.addUser(entity.RoleUser)
	service := env.addService(provider)
	reservation := env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)

	_, err := svc.Get(context.Background(), other, reservation.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestReservationHistoryCompletedNewestFirst(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	older := env.addReservation(customer, service, time.Now().Add(-48*time.Hour), entity.ReservationStatusCompleted)
	newer := env.addReservation(customer, service, time.Now().Add(-2*time.Hour), entity.ReservationStatusCompleted)
	env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)

	history, err := svc.History(context.Background(), customer, false)
	require.NoError(t, err)
	require.Equal(t, 2, history.TotalCount)
	assert.Equal(t, newer.ID.String(), history.History[0].ID)
	assert.Equal(t, older.ID.String(), history.History[1].ID)

	// The provider sees the same completed jobs from their side.
	providerHistory, err := svc.History(context.Background(), provider, true)
	require.NoError(t, err)
	assert.Equal(t, 2, providerHistory.TotalCount)
}

func TestReservationProviderListForbiddenForPlainUser(t *testing.T) {
	env := newTestEnv()
	svc := NewReservationService(env.repo, testLogger())
	customer := env.addUser(entity.RoleUser)

	_, err := svc.ListForProvider(context.Background(), customer, nil)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}
