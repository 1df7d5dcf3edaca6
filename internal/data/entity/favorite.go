package entity

import (
	"github.com/google/uuid"
)

// Favorite links a user to a bookmarked service. The (user_id, service_id)
// pair is unique.
type Favorite struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	ServiceID uuid.UUID `db:"service_id"`
}
