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

func TestAdminSelfGuards(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	admin := env.addUser(entity.RoleAdmin)

	err := svc.DeleteUser(context.Background(), admin, admin.ID.String())
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.ChangeRole(context.Background(), admin, admin.ID.String(), &request.ChangeRoleRequest{Role: "user"})
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// The admin account is intact.
	stored, _ := env.users.FindByID(context.Background(), admin.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}

func TestAdminChangeRole(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	admin := env.addUser(entity.RoleAdmin)
	target := env.addUser(entity.RoleUser)

	resp, err := svc.ChangeRole(context.Background(), admin, target.ID.String(), &request.ChangeRoleRequest{Role: "provider"})
	require.NoError(t, err)
	assert.Equal(t, "provider", resp.Role)

	stored, _ := env.users.FindByID(context.Background(), target.ID)
	assert.Equal(t, entity.RoleProvider, stored.Role)
}

func TestAdminOperationsForbiddenForNonAdmins(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	provider := env.addUser(entity.RoleProvider)

	_, err := svc.ListUsers(context.Background(), provider, nil)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.Statistics(context.Background(), provider)
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestAdminRenameCategory(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	admin := env.addUser(entity.RoleAdmin)
	provider := env.addUser(entity.RoleProvider)

	for i := 0; i < 3; i++ {
		env.addService(provider)
	}
	other := env.addService(provider)
	other.Category = "Electrical"

	resp, err := svc.RenameCategory(context.Background(), admin, &request.RenameCategoryRequest{
		OldName: "Plumbing",
		NewName: "Home Plumbing",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Count)

	categories, err := svc.ListCategories(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electrical", "Home Plumbing"}, categories.Categories)
}

func TestAdminRenameUnknownCategory(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	admin := env.addUser(entity.RoleAdmin)

	_, err := svc.RenameCategory(context.Background(), admin, &request.RenameCategoryRequest{
		OldName: "Gardening",
		NewName: "Landscaping",
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAdminDeleteCategoryCascades(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())
	admin := env.addUser(entity.RoleAdmin)
	provider := env.addUser(entity.RoleProvider)

	env.addService(provider)
	env.addService(provider)

	resp, err := svc.DeleteCategory(context.Background(), admin, "Plumbing")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Count)

	remaining, _ := env.services.Count(context.Background())
	assert.Zero(t, remaining)
}

func TestAdminStatistics(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())

	admin := env.addUser(entity.RoleAdmin)
	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	env.addReservation(customer, service, time.Now(), entity.ReservationStatusPending)
	env.addReservation(customer, service, time.Now(), entity.ReservationStatusCompleted)

	stats, err := svc.Statistics(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.UsersByRole["admin"])
	assert.Equal(t, int64(1), stats.TotalServices)
	assert.Equal(t, int64(2), stats.TotalReservations)
	assert.Equal(t, int64(1), stats.PendingReservations)
	assert.Zero(t, stats.TotalReviews)
}

func TestAdminListUsersByRole(t *testing.T) {
	env := newTestEnv()
	svc := NewAdminService(env.repo, testLogger())

	admin := env.addUser(entity.RoleAdmin)
	env.addUser(entity.RoleProvider)
	env.addUser(entity.RoleUser)
	env.addUser(entity.RoleUser)

	role := "user"
	users, err := svc.ListUsers(context.Background(), admin, &role)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	bad := "superuser"
	_, err = svc.ListUsers(context.Background(), admin, &bad)
	assert.ErrorIs(t, err, entity.ErrValidation)
}
