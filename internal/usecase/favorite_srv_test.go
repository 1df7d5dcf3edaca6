package usecase

import (
	"context"
	"testing"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddAndCheck(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	_, err := svc.Add(context.Background(), customer, &request.AddFavoriteRequest{ServiceID: service.ID.String()})
	require.NoError(t, err)

	check, err := svc.IsFavorite(context.Background(), customer, service.ID.String())
	require.NoError(t, err)
	assert.True(t, check.IsFavorite)

	// Another user's list is unaffected.
	other := env.addUser(entity.RoleUser)
	check, err = svc.IsFavorite(context.Background(), other, service.ID.String())
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)
}

func TestFavoriteAddDuplicate(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	req := &request.AddFavoriteRequest{ServiceID: service.ID.String()}
	_, err := svc.Add(context.Background(), customer, req)
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), customer, req)
	assert.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestFavoriteAddUnknownService(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.repo, testLogger())
	customer := env.addUser(entity.RoleUser)

	req := &request.AddFavoriteRequest{ServiceID: "3f1b6a1e-0000-4000-8000-000000000000"}
	_, err := svc.Add(context.Background(), customer, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFavoriteRemove(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	_, err := svc.Add(context.Background(), customer, &request.AddFavoriteRequest{ServiceID: service.ID.String()})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), customer, service.ID.String()))

	err = svc.Remove(context.Background(), customer, service.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFavoriteListEmbedsService(t *testing.T) {
	env := newTestEnv()
	svc := NewFavoriteService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	_, err := svc.Add(context.Background(), customer, &request.AddFavoriteRequest{ServiceID: service.ID.String()})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Favorites, 1)
	require.NotNil(t, list.Favorites[0].Service)
	assert.Equal(t, service.Name, list.Favorites[0].Service.Name)
}
