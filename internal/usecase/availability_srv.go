package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/response"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// AvailableSlots lists the free whole-hour slots of a service on a day.
	AvailableSlots(ctx context.Context, serviceID, date string) (*response.AvailableSlotsResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) AvailableSlots(ctx context.Context, serviceID, date string) (*response.AvailableSlotsResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID %s", entity.ErrValidation, serviceID)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", entity.ErrValidation)
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, entity.ErrNotFound)
	}

	reservations, err := s.repo.Reservation.FindActiveByServiceAndDate(ctx, id, day)
	if err != nil {
		s.log.Error("Failed to load reservations for slot computation",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	occupied := make(map[int]struct{}, len(reservations))
	for _, reservation := range reservations {
		occupied[reservation.ScheduledAt.Hour()] = struct{}{}
	}

	// Stored windows are validated on write, but an inverted one must
	// still degrade to "no slots" rather than blow up the request.
	start, end := service.WorkingWindow()
	if end < start {
		end = start
	}
	slots := make([]string, 0, end-start)
	for hour := start; hour < end; hour++ {
		if _, taken := occupied[hour]; taken {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return &response.AvailableSlotsResponse{
		Date:            day.Format(utils.DateLayout),
		ServiceID:       service.ID.String(),
		DurationMinutes: service.Duration,
		AvailableSlots:  slots,
		WorkingHours:    service.WorkingHoursLabel(),
	}, nil
}
