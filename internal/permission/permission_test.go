package permission

import (
	"testing"

	"service-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestGuestGrants(t *testing.T) {
	assert.True(t, Allowed("", OpSearchServices))
	assert.True(t, Allowed("", OpViewService))
	assert.True(t, Allowed("", OpViewReviews))

	assert.False(t, Allowed("", OpCreateReservation))
	assert.False(t, Allowed("", OpManageOwnServices))
	assert.False(t, Allowed("", OpManageUsers))
}

func TestUserInheritsGuestGrants(t *testing.T) {
	role := entity.RoleUser

	assert.True(t, Allowed(role, OpSearchServices))
	assert.True(t, Allowed(role, OpCreateReservation))
	assert.True(t, Allowed(role, OpLeaveReview))
	assert.True(t, Allowed(role, OpManageFavorites))
	assert.True(t, Allowed(role, OpUpdateProfile))

	assert.False(t, Allowed(role, OpManageOwnServices))
	assert.False(t, Allowed(role, OpManageUsers))
}

func TestProviderInheritsUserGrants(t *testing.T) {
	role := entity.RoleProvider

	// Provider keeps the customer-side grants.
	assert.True(t, Allowed(role, OpCreateReservation))
	assert.True(t, Allowed(role, OpManageFavorites))

	// Plus the provider-only ones.
	assert.True(t, Allowed(role, OpManageOwnServices))
	assert.True(t, Allowed(role, OpManageReceived))
	assert.True(t, Allowed(role, OpSetAvailability))
	assert.True(t, Allowed(role, OpViewOwnRatings))

	assert.False(t, Allowed(role, OpManageUsers))
	assert.False(t, Allowed(role, OpViewStatistics))
}

func TestAdminHasEveryGrant(t *testing.T) {
	for _, op := range Operations(entity.RoleAdmin) {
		assert.True(t, Allowed(entity.RoleAdmin, op), "operation %s", op)
	}

	assert.True(t, Allowed(entity.RoleAdmin, OpManageUsers))
	assert.True(t, Allowed(entity.RoleAdmin, OpManageCategories))
	assert.True(t, Allowed(entity.RoleAdmin, OpViewStatistics))
	assert.True(t, Allowed(entity.RoleAdmin, OpCreateReservation))
}

func TestUnknownOperation(t *testing.T) {
	assert.False(t, Allowed(entity.RoleAdmin, Operation("fly_to_the_moon")))
}
