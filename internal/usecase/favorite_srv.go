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

type FavoriteService interface {
	Add(ctx context.Context, actor *entity.User, req *request.AddFavoriteRequest) (*response.FavoriteResponse, error)
	Remove(ctx context.Context, actor *entity.User, serviceID string) error
	List(ctx context.Context, actor *entity.User) (*response.FavoriteListResponse, error)
	IsFavorite(ctx context.Context, actor *entity.User, serviceID string) (*response.FavoriteCheckResponse, error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) Add(ctx context.Context, actor *entity.User, req *request.AddFavoriteRequest) (*response.FavoriteResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageFavorites) {
		return nil, fmt.Errorf("add favorite: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
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

	existing, err := s.repo.Favorite.FindByUserAndService(ctx, actor.ID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("service already in favorites: %w", entity.ErrDuplicate)
	}

	favorite := &entity.Favorite{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    actor.ID,
		ServiceID: serviceID,
	}

	if err := s.repo.Favorite.Create(ctx, favorite); err != nil {
		s.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", actor.ID.String()),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.String("user_id", actor.ID.String()),
		zap.String("service_id", serviceID.String()),
	)

	resp := response.FavoriteToResponse(favorite, service)
	return &resp, nil
}

func (s *favoriteService) Remove(ctx context.Context, actor *entity.User, serviceID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageFavorites) {
		return fmt.Errorf("remove favorite: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	if err := s.repo.Favorite.Delete(ctx, actor.ID, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", actor.ID.String()),
		zap.String("service_id", serviceID),
	)

	return nil
}

func (s *favoriteService) List(ctx context.Context, actor *entity.User) (*response.FavoriteListResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageFavorites) {
		return nil, fmt.Errorf("list favorites: %w", entity.ErrForbidden)
	}

	favorites, err := s.repo.Favorite.FindByUserID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to list favorites", zap.Error(err))
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	total, err := s.repo.Favorite.CountByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	result := make([]response.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		service, err := s.repo.Service.FindByID(ctx, favorite.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("load favorite service: %w", err)
		}
		result = append(result, response.FavoriteToResponse(favorite, service))
	}

	return &response.FavoriteListResponse{
		Favorites: result,
		Total:     total,
	}, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, actor *entity.User, serviceID string) (*response.FavoriteCheckResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageFavorites) {
		return nil, fmt.Errorf("check favorite: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	favorite, err := s.repo.Favorite.FindByUserAndService(ctx, actor.ID, id)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}

	return &response.FavoriteCheckResponse{IsFavorite: favorite != nil}, nil
}
