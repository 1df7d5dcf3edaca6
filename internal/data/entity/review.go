package entity

import (
	"github.com/google/uuid"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	BaseSimple
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`
	UserID    uuid.UUID `db:"user_id"`
	ServiceID uuid.UUID `db:"service_id"`
}
