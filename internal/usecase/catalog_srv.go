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

type CatalogService interface {
	// Guest reads.
	Search(ctx context.Context, name, category, date *string) ([]response.ServiceResponse, error)
	Get(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	List(ctx context.Context) ([]response.ServiceResponse, error)

	// Provider catalog management, scoped to the owning provider.
	ListMine(ctx context.Context, actor *entity.User) ([]response.ServiceResponse, error)
	Create(ctx context.Context, actor *entity.User, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	Update(ctx context.Context, actor *entity.User, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	Delete(ctx context.Context, actor *entity.User, serviceID string) error
	SetAvailability(ctx context.Context, actor *entity.User, serviceID string, req *request.SetAvailabilityRequest) (*response.ServiceResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Search(ctx context.Context, name, category, date *string) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.Search(ctx, name, category)
	if err != nil {
		s.log.Error("Failed to search services", zap.Error(err))
		return nil, fmt.Errorf("search services: %w", err)
	}

	// With a date filter, drop services that already have an active
	// reservation on that day.
	if date != nil {
		day, err := utils.ParseDate(*date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", entity.ErrValidation)
		}

		booked, err := s.repo.Reservation.ActiveServiceIDsOnDate(ctx, day)
		if err != nil {
			s.log.Error("Failed to check booked services", zap.Error(err))
			return nil, fmt.Errorf("check booked services: %w", err)
		}

		filtered := services[:0]
		for _, service := range services {
			if _, taken := booked[service.ID]; !taken {
				filtered = append(filtered, service)
			}
		}
		services = filtered
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) Get(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
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

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) List(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx, nil)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	return response.ServicesToResponse(services), nil
}

func (s *catalogService) ListMine(ctx context.Context, actor *entity.User) ([]response.ServiceResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnServices) {
		return nil, fmt.Errorf("list own services: %w", entity.ErrForbidden)
	}

	services, err := s.repo.Service.FindByProviderID(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to list provider services",
			zap.Error(err),
			zap.String("provider_id", actor.ID.String()),
		)
		return nil, fmt.Errorf("list provider services: %w", err)
	}

	return response.ServicesToResponse(services), nil
}

// checkWorkingWindow rejects a service whose resolved window is empty or
// inverted, so slot computation always iterates a real [start, end) range.
func checkWorkingWindow(service *entity.Service) error {
	if start, end := service.WorkingWindow(); end <= start {
		return fmt.Errorf("%w: working hours end must be after start", entity.ErrValidation)
	}
	return nil
}

func (s *catalogService) Create(ctx context.Context, actor *entity.User, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnServices) {
		return nil, fmt.Errorf("create service: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Price:             req.Price,
		Duration:          duration,
		Availability:      req.Availability,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
		ImageURL:          req.ImageURL,
		ProviderID:        actor.ID,
	}

	if err := checkWorkingWindow(service); err != nil {
		return nil, err
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("provider_id", actor.ID.String()),
		)
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("provider_id", actor.ID.String()),
		zap.String("category", service.Category),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

// ownedService loads the service and enforces the ownership check. Admins
// bypass the owner equality.
func (s *catalogService) ownedService(ctx context.Context, actor *entity.User, serviceID string) (*entity.Service, error) {
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

	if service.ProviderID != actor.ID && actor.Role != entity.RoleAdmin {
		// Ownership failures fold into not-found for non-admins.
		return nil, fmt.Errorf("service %s: %w", serviceID, entity.ErrNotFound)
	}

	return service, nil
}

func (s *catalogService) Update(ctx context.Context, actor *entity.User, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnServices) {
		return nil, fmt.Errorf("update service: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	service, err := s.ownedService(ctx, actor, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Availability != nil {
		service.Availability = req.Availability
	}
	if req.WorkingHoursStart != nil {
		service.WorkingHoursStart = req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		service.WorkingHoursEnd = req.WorkingHoursEnd
	}
	if req.ImageURL != nil {
		service.ImageURL = req.ImageURL
	}

	if err := checkWorkingWindow(service); err != nil {
		return nil, err
	}

	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return nil, fmt.Errorf("update service: %w", err)
	}

	s.log.Info("Service updated",
		zap.String("service_id", serviceID),
		zap.String("actor_id", actor.ID.String()),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) Delete(ctx context.Context, actor *entity.User, serviceID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageOwnServices) {
		return fmt.Errorf("delete service: %w", entity.ErrForbidden)
	}

	service, err := s.ownedService(ctx, actor, serviceID)
	if err != nil {
		return err
	}

	if err := s.repo.Service.Delete(ctx, service.ID); err != nil {
		s.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return fmt.Errorf("delete service: %w", err)
	}

	s.log.Info("Service deleted",
		zap.String("service_id", serviceID),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

func (s *catalogService) SetAvailability(ctx context.Context, actor *entity.User, serviceID string, req *request.SetAvailabilityRequest) (*response.ServiceResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpSetAvailability) {
		return nil, fmt.Errorf("set availability: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Set availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	service, err := s.ownedService(ctx, actor, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Availability != nil {
		service.Availability = req.Availability
	}
	if req.WorkingHoursStart != nil {
		service.WorkingHoursStart = req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		service.WorkingHoursEnd = req.WorkingHoursEnd
	}

	if err := checkWorkingWindow(service); err != nil {
		return nil, err
	}

	service.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, service); err != nil {
		s.log.Error("Failed to set availability",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return nil, fmt.Errorf("set availability: %w", err)
	}

	s.log.Info("Availability updated",
		zap.String("service_id", serviceID),
		zap.String("provider_id", actor.ID.String()),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}
