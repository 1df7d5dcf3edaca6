package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreateNotifiesProvider(t *testing.T) {
	env := newTestEnv()
	svc := NewReviewService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	req := &request.CreateReviewRequest{
		ServiceID: service.ID.String(),
		Rating:    5,
	}

	resp, err := svc.Create(context.Background(), customer, req)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)

	notifications, err := env.notifications.FindByUserID(context.Background(), provider.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationNewReview, notifications[0].Type)
}

func TestReviewCreateRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv()
	svc := NewReviewService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	service := env.addService(provider)

	for _, rating := range []int{0, 6, -1} {
		req := &request.CreateReviewRequest{
			ServiceID: service.ID.String(),
			Rating:    rating,
		}
		_, err := svc.Create(context.Background(), customer, req)
		assert.ErrorIs(t, err, entity.ErrValidation, "rating %d", rating)
	}

	// Nothing was stored.
	count, _ := env.reviews.Count(context.Background())
	assert.Zero(t, count)
}

func TestReviewDeleteOwnerOrAdminOnly(t *testing.T) {
	env := newTestEnv()
	svc := NewReviewService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	author := env.addUser(entity.RoleUser)
	other := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)
	service := env.addService(provider)

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Rating:     4,
		UserID:     author.ID,
		ServiceID:  service.ID,
	}
	env.reviews.reviews[review.ID] = review

	err := svc.Delete(context.Background(), other, review.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = svc.Delete(context.Background(), admin, review.ID.String())
	require.NoError(t, err)

	count, _ := env.reviews.Count(context.Background())
	assert.Zero(t, count)
}

func TestProviderRatingAggregatesAcrossServices(t *testing.T) {
	env := newTestEnv()
	svc := NewReviewService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	customer := env.addUser(entity.RoleUser)
	first := env.addService(provider)
	second := env.addService(provider)

	for i, pair := range []struct {
		serviceID uuid.UUID
		rating    int
	}{
		{first.ID, 5},
		{second.ID, 3},
	} {
		review := &entity.Review{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().Add(time.Duration(i) * time.Second)},
			Rating:     pair.rating,
			UserID:     customer.ID,
			ServiceID:  pair.serviceID,
		}
		env.reviews.reviews[review.ID] = review
	}

	resp, err := svc.ProviderRating(context.Background(), provider)
	require.NoError(t, err)
	require.NotNil(t, resp.AverageRating)
	assert.InDelta(t, 4.0, *resp.AverageRating, 0.001)
}

func TestServiceRatingNilWithoutReviews(t *testing.T) {
	env := newTestEnv()
	svc := NewReviewService(env.repo, testLogger())

	provider := env.addUser(entity.RoleProvider)
	service := env.addService(provider)

	resp, err := svc.ServiceRating(context.Background(), service.ID.String())
	require.NoError(t, err)
	assert.Nil(t, resp.AverageRating)
}
