package utils

import (
	"context"

	"service-booking/internal/data/entity"
)

type contextKey string

const actorKey contextKey = "actor"

// SetActorContext stores the resolved actor for the request.
func SetActorContext(ctx context.Context, actor *entity.User) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActorFromContext returns the actor set by the auth middleware, or false
// when the request is anonymous.
func GetActorFromContext(ctx context.Context) (*entity.User, bool) {
	actor, ok := ctx.Value(actorKey).(*entity.User)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
