package usecase

import (
	"context"
	"fmt"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/internal/permission"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	Create(ctx context.Context, actor *entity.User, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListByService(ctx context.Context, serviceID string) ([]response.ReviewResponse, error)
	ListByUser(ctx context.Context, actor *entity.User) ([]response.ReviewResponse, error)
	Delete(ctx context.Context, actor *entity.User, reviewID string) error

	// ServiceRating returns the average rating of one service.
	ServiceRating(ctx context.Context, serviceID string) (*response.RatingResponse, error)
	// ProviderRating aggregates across all of the provider's services.
	ProviderRating(ctx context.Context, actor *entity.User) (*response.RatingResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, actor *entity.User, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpLeaveReview) {
		return nil, fmt.Errorf("create review: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Rating < entity.RatingMin || req.Rating > entity.RatingMax {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", entity.ErrValidation, entity.RatingMin, entity.RatingMax)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, req.ServiceID)
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", req.ServiceID, entity.ErrNotFound)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserID:    actor.ID,
		ServiceID: service.ID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", actor.ID.String()),
			zap.String("service_id", service.ID.String()),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	related := review.ID
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    service.ProviderID,
		Type:      entity.NotificationNewReview,
		Title:     "New review",
		Message:   fmt.Sprintf("Your service %s received a %d-star review", service.Name, review.Rating),
		RelatedID: &related,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to notify provider about review",
			zap.Error(err),
			zap.String("provider_id", service.ProviderID.String()),
		)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("service_id", service.ID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByService(ctx context.Context, serviceID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	reviews, err := s.repo.Review.FindByServiceID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) ListByUser(ctx context.Context, actor *entity.User) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to list user reviews", zap.Error(err))
		return nil, fmt.Errorf("list user reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) Delete(ctx context.Context, actor *entity.User, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: invalid review ID %s", entity.ErrValidation, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s: %w", reviewID, entity.ErrNotFound)
	}

	if review.UserID != actor.ID && actor.Role != entity.RoleAdmin {
		return fmt.Errorf("review %s: %w", reviewID, entity.ErrNotFound)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

func (s *reviewService) ServiceRating(ctx context.Context, serviceID string) (*response.RatingResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, entity.ErrNotFound)
	}

	average, err := s.repo.Review.AverageByServiceID(ctx, id)
	if err != nil {
		s.log.Error("Failed to compute service rating", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("compute service rating: %w", err)
	}

	return &response.RatingResponse{AverageRating: average}, nil
}

func (s *reviewService) ProviderRating(ctx context.Context, actor *entity.User) (*response.RatingResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpViewOwnRatings) {
		return nil, fmt.Errorf("provider rating: %w", entity.ErrForbidden)
	}

	average, err := s.repo.Review.AverageByProviderID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to compute provider rating", zap.Error(err))
		return nil, fmt.Errorf("compute provider rating: %w", err)
	}

	return &response.RatingResponse{AverageRating: average}, nil
}
