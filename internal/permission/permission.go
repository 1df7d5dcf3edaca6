// Package permission resolves an actor's role into the set of operations it
// may invoke. Roles form a strict capability chain: guest < user < provider
// < admin. The chain is expressed as a flat grant table rather than
// inheritance, so every entry point does one lookup.
package permission

import "service-booking/internal/data/entity"

type Operation string

const (
	// Guest operations (no identity required).
	OpSearchServices Operation = "services.search"
	OpViewService    Operation = "services.view"
	OpViewReviews    Operation = "reviews.view"

	// Registered-user operations.
	OpCreateReservation Operation = "reservations.create"
	OpManageOwnBookings Operation = "reservations.manage_own"
	OpLeaveReview       Operation = "reviews.create"
	OpManageFavorites   Operation = "favorites.manage"
	OpManageAlerts      Operation = "notifications.manage"
	OpUpdateProfile     Operation = "profile.update"

	// Provider operations.
	OpManageOwnServices Operation = "services.manage_own"
	OpManageReceived    Operation = "reservations.manage_received"
	OpViewOwnRatings    Operation = "reviews.aggregate_own"
	OpSetAvailability   Operation = "services.set_availability"

	// Admin operations.
	OpManageUsers        Operation = "admin.users"
	OpManageAnyService   Operation = "admin.services"
	OpManageReservations Operation = "admin.reservations"
	OpManageReviews      Operation = "admin.reviews"
	OpManageCategories   Operation = "admin.categories"
	OpViewStatistics     Operation = "admin.statistics"
)

var guestOps = []Operation{
	OpSearchServices,
	OpViewService,
	OpViewReviews,
}

var userOps = []Operation{
	OpCreateReservation,
	OpManageOwnBookings,
	OpLeaveReview,
	OpManageFavorites,
	OpManageAlerts,
	OpUpdateProfile,
}

var providerOps = []Operation{
	OpManageOwnServices,
	OpManageReceived,
	OpViewOwnRatings,
	OpSetAvailability,
}

var adminOps = []Operation{
	OpManageUsers,
	OpManageAnyService,
	OpManageReservations,
	OpManageReviews,
	OpManageCategories,
	OpViewStatistics,
}

// grants holds the full operation set per role, guest included as the
// zero-value key.
var grants = buildGrants()

func buildGrants() map[entity.UserRole]map[Operation]struct{} {
	g := make(map[entity.UserRole]map[Operation]struct{}, 4)

	add := func(role entity.UserRole, sets ...[]Operation) {
		ops := make(map[Operation]struct{})
		for _, set := range sets {
			for _, op := range set {
				ops[op] = struct{}{}
			}
		}
		g[role] = ops
	}

	add("", guestOps)
	add(entity.RoleUser, guestOps, userOps)
	add(entity.RoleProvider, guestOps, userOps, providerOps)
	add(entity.RoleAdmin, guestOps, userOps, providerOps, adminOps)

	return g
}

// Allowed reports whether the role may invoke the operation. An unknown role
// gets guest capabilities.
func Allowed(role entity.UserRole, op Operation) bool {
	ops, ok := grants[role]
	if !ok {
		ops = grants[""]
	}
	_, ok = ops[op]
	return ok
}

// Operations returns every operation granted to the role.
func Operations(role entity.UserRole) []Operation {
	ops, ok := grants[role]
	if !ok {
		ops = grants[""]
	}
	out := make([]Operation, 0, len(ops))
	for op := range ops {
		out = append(out, op)
	}
	return out
}
