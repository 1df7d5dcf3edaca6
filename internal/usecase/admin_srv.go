package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/internal/permission"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListUsers(ctx context.Context, actor *entity.User, role *string) ([]response.UserResponse, error)
	DeleteUser(ctx context.Context, actor *entity.User, userID string) error
	ChangeRole(ctx context.Context, actor *entity.User, userID string, req *request.ChangeRoleRequest) (*response.UserResponse, error)

	ListServices(ctx context.Context, actor *entity.User, category *string) ([]response.ServiceResponse, error)
	DeleteService(ctx context.Context, actor *entity.User, serviceID string) error

	ListReservations(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error)
	DeleteReservation(ctx context.Context, actor *entity.User, reservationID string) error

	ListReviews(ctx context.Context, actor *entity.User) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor *entity.User, reviewID string) error

	ListCategories(ctx context.Context, actor *entity.User) (*response.CategoriesResponse, error)
	RenameCategory(ctx context.Context, actor *entity.User, req *request.RenameCategoryRequest) (*response.CategoryChangeResponse, error)
	DeleteCategory(ctx context.Context, actor *entity.User, category string) (*response.CategoryChangeResponse, error)

	Statistics(ctx context.Context, actor *entity.User) (*response.StatisticsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context, actor *entity.User, role *string) ([]response.UserResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageUsers) {
		return nil, fmt.Errorf("list users: %w", entity.ErrForbidden)
	}

	var filter *entity.UserRole
	if role != nil {
		parsed, ok := entity.ParseUserRole(*role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %s", entity.ErrValidation, *role)
		}
		filter = &parsed
	}

	users, err := s.repo.User.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.UserToResponse(user))
	}
	return result, nil
}

func (s *adminService) DeleteUser(ctx context.Context, actor *entity.User, userID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageUsers) {
		return fmt.Errorf("delete user: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	if id == actor.ID {
		return fmt.Errorf("admins cannot delete their own account: %w", entity.ErrForbidden)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, entity.ErrNotFound)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted",
		zap.String("user_id", userID),
		zap.String("admin_id", actor.ID.String()),
	)

	return nil
}

func (s *adminService) ChangeRole(ctx context.Context, actor *entity.User, userID string, req *request.ChangeRoleRequest) (*response.UserResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageUsers) {
		return nil, fmt.Errorf("change role: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	if id == actor.ID {
		return nil, fmt.Errorf("admins cannot change their own role: %w", entity.ErrForbidden)
	}

	role, ok := entity.ParseUserRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %s", entity.ErrValidation, req.Role)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, entity.ErrNotFound)
	}

	if err := s.repo.User.UpdateRole(ctx, id, role); err != nil {
		s.log.Error("Failed to change user role",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("change role: %w", err)
	}

	user.Role = role

	s.log.Info("User role changed",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.String("admin_id", actor.ID.String()),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *adminService) ListServices(ctx context.Context, actor *entity.User, category *string) ([]response.ServiceResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageAnyService) {
		return nil, fmt.Errorf("list services: %w", entity.ErrForbidden)
	}

	services, err := s.repo.Service.FindAll(ctx, category)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	return response.ServicesToResponse(services), nil
}

func (s *adminService) DeleteService(ctx context.Context, actor *entity.User, serviceID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageAnyService) {
		return fmt.Errorf("delete service: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return fmt.Errorf("service %s: %w", serviceID, entity.ErrNotFound)
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.String("service_id", serviceID))
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted by admin",
		zap.String("service_id", serviceID),
		zap.String("admin_id", actor.ID.String()),
	)

	return nil
}

func (s *adminService) ListReservations(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageReservations) {
		return nil, fmt.Errorf("list reservations: %w", entity.ErrForbidden)
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return response.ReservationsToResponse(reservations), nil
}

func (s *adminService) DeleteReservation(ctx context.Context, actor *entity.User, reservationID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageReservations) {
		return fmt.Errorf("delete reservation: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("%w: invalid reservation ID %s", entity.ErrValidation, reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	if err := s.repo.Reservation.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete reservation", zap.Error(err), zap.String("reservation_id", reservationID))
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.log.Info("Reservation deleted by admin",
		zap.String("reservation_id", reservationID),
		zap.String("admin_id", actor.ID.String()),
	)

	return nil
}

func (s *adminService) ListReviews(ctx context.Context, actor *entity.User) ([]response.ReviewResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageReviews) {
		return nil, fmt.Errorf("list reviews: %w", entity.ErrForbidden)
	}

	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *adminService) DeleteReview(ctx context.Context, actor *entity.User, reviewID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageReviews) {
		return fmt.Errorf("delete review: %w", entity.ErrForbidden)
	}

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

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted by admin",
		zap.String("review_id", reviewID),
		zap.String("admin_id", actor.ID.String()),
	)

	return nil
}

func (s *adminService) ListCategories(ctx context.Context, actor *entity.User) (*response.CategoriesResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageCategories) {
		return nil, fmt.Errorf("list categories: %w", entity.ErrForbidden)
	}

	categories, err := s.repo.Service.DistinctCategories(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return &response.CategoriesResponse{Categories: categories}, nil
}

func (s *adminService) RenameCategory(ctx context.Context, actor *entity.User, req *request.RenameCategoryRequest) (*response.CategoryChangeResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageCategories) {
		return nil, fmt.Errorf("rename category: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	count, err := s.repo.Service.RenameCategory(ctx, req.OldName, req.NewName)
	if err != nil {
		s.log.Error("Failed to rename category",
			zap.Error(err),
			zap.String("old_name", req.OldName),
			zap.String("new_name", req.NewName),
		)
		return nil, fmt.Errorf("rename category: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("category %s: %w", req.OldName, entity.ErrNotFound)
	}

	s.log.Info("Category renamed",
		zap.String("old_name", req.OldName),
		zap.String("new_name", req.NewName),
		zap.Int64("count", count),
	)

	return &response.CategoryChangeResponse{Count: count}, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, actor *entity.User, category string) (*response.CategoryChangeResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageCategories) {
		return nil, fmt.Errorf("delete category: %w", entity.ErrForbidden)
	}

	count, err := s.repo.Service.DeleteByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category", category))
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("category %s: %w", category, entity.ErrNotFound)
	}

	s.log.Info("Category deleted",
		zap.String("category", category),
		zap.Int64("count", count),
	)

	return &response.CategoryChangeResponse{Count: count}, nil
}

func (s *adminService) Statistics(ctx context.Context, actor *entity.User) (*response.StatisticsResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpViewStatistics) {
		return nil, fmt.Errorf("statistics: %w", entity.ErrForbidden)
	}

	byRole, err := s.repo.User.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	var totalUsers int64
	usersByRole := make(map[string]int64, len(byRole))
	for role, count := range byRole {
		totalUsers += count
		usersByRole[string(role)] = count
	}

	totalServices, err := s.repo.Service.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}

	totalReservations, err := s.repo.Reservation.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	pending, err := s.repo.Reservation.CountByStatus(ctx, entity.ReservationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending reservations: %w", err)
	}

	totalReviews, err := s.repo.Review.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	return &response.StatisticsResponse{
		TotalUsers:          totalUsers,
		UsersByRole:         usersByRole,
		TotalServices:       totalServices,
		TotalReservations:   totalReservations,
		PendingReservations: pending,
		TotalReviews:        totalReviews,
	}, nil
}
