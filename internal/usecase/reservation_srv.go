package usecase

import (
	"context"
	"fmt"
	"sort"
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

type ReservationService interface {
	Create(ctx context.Context, actor *entity.User, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Get(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error)
	ListForCustomer(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error)
	ListForProvider(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error)
	History(ctx context.Context, actor *entity.User, asProvider bool) (*response.ReservationHistoryResponse, error)
	Update(ctx context.Context, actor *entity.User, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error)
	Confirm(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error)
	Reject(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error)
	Complete(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Create(ctx context.Context, actor *entity.User, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpCreateReservation) {
		return nil, fmt.Errorf("create reservation: %w", entity.ErrForbidden)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.Datetime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid datetime, expected RFC 3339", entity.ErrValidation)
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

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ScheduledAt:     scheduledAt,
		Status:          entity.ReservationStatusPending,
		Notes:           req.Notes,
		ProblemImageURL: req.ProblemImageURL,
		CustomerID:      actor.ID,
		// The provider is taken from the service, never from the request.
		ProviderID: service.ProviderID,
		ServiceID:  service.ID,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("customer_id", actor.ID.String()),
			zap.String("service_id", service.ID.String()),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.notify(ctx, service.ProviderID, entity.NotificationReservationNew, service.Name, reservation.ID)

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("customer_id", actor.ID.String()),
		zap.String("provider_id", service.ProviderID.String()),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// notify records a lifecycle notification for the recipient. Notification
// failures are logged and swallowed so the reservation change still lands.
func (s *reservationService) notify(ctx context.Context, userID uuid.UUID, t entity.NotificationType, serviceName string, reservationID uuid.UUID) {
	title, message := entity.ReservationNotificationContent(t, serviceName)
	related := reservationID
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Type:      t,
		Title:     title,
		Message:   message,
		RelatedID: &related,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("type", string(t)),
		)
	}
}

// findOwned loads a reservation and verifies the actor may see it: the
// customer, the provider, or an admin. Anyone else gets not-found.
func (s *reservationService) findOwned(ctx context.Context, actor *entity.User, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", entity.ErrValidation, reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	if reservation.CustomerID != actor.ID && reservation.ProviderID != actor.ID && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	return reservation, nil
}

func (s *reservationService) Get(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func parseStatusFilter(status *string) (*entity.ReservationStatus, error) {
	if status == nil {
		return nil, nil
	}
	parsed, ok := entity.ParseReservationStatus(*status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %s", entity.ErrValidation, *status)
	}
	return &parsed, nil
}

func (s *reservationService) ListForCustomer(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnBookings) {
		return nil, fmt.Errorf("list reservations: %w", entity.ErrForbidden)
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindByCustomerID(ctx, actor.ID, filter)
	if err != nil {
		s.log.Error("Failed to list customer reservations", zap.Error(err))
		return nil, fmt.Errorf("list customer reservations: %w", err)
	}

	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) ListForProvider(ctx context.Context, actor *entity.User, status *string) ([]response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageReceived) {
		return nil, fmt.Errorf("list received reservations: %w", entity.ErrForbidden)
	}

	filter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindByProviderID(ctx, actor.ID, filter)
	if err != nil {
		s.log.Error("Failed to list provider reservations", zap.Error(err))
		return nil, fmt.Errorf("list provider reservations: %w", err)
	}

	return response.ReservationsToResponse(reservations), nil
}

func (s *reservationService) History(ctx context.Context, actor *entity.User, asProvider bool) (*response.ReservationHistoryResponse, error) {
	op := permission.OpManageOwnBookings
	if asProvider {
		op = permission.OpManageReceived
	}
	if !permission.Allowed(actor.Role, op) {
		return nil, fmt.Errorf("reservation history: %w", entity.ErrForbidden)
	}

	completed := entity.ReservationStatusCompleted
	var (
		reservations []*entity.Reservation
		err          error
	)
	if asProvider {
		reservations, err = s.repo.Reservation.FindByProviderID(ctx, actor.ID, &completed)
	} else {
		reservations, err = s.repo.Reservation.FindByCustomerID(ctx, actor.ID, &completed)
	}
	if err != nil {
		s.log.Error("Failed to load reservation history", zap.Error(err))
		return nil, fmt.Errorf("reservation history: %w", err)
	}

	// Most recent appointment first.
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].ScheduledAt.After(reservations[j].ScheduledAt)
	})

	return &response.ReservationHistoryResponse{
		History:    response.ReservationsToResponse(reservations),
		TotalCount: len(reservations),
	}, nil
}

func (s *reservationService) Update(ctx context.Context, actor *entity.User, reservationID string, req *request.UpdateReservationRequest) (*response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnBookings) {
		return nil, fmt.Errorf("update reservation: %w", entity.ErrForbidden)
	}

	reservation, err := s.findOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.CustomerID != actor.ID && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	if reservation.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: reservation is %s and can no longer be edited", entity.ErrValidation, reservation.Status)
	}

	if req.Datetime != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.Datetime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid datetime, expected RFC 3339", entity.ErrValidation)
		}
		reservation.ScheduledAt = scheduledAt
	}
	if req.Notes != nil {
		reservation.Notes = req.Notes
	}
	if req.ProblemImageURL != nil {
		reservation.ProblemImageURL = req.ProblemImageURL
	}

	reservation.UpdatedAt = time.Now()

	if err := s.repo.Reservation.Update(ctx, reservation); err != nil {
		s.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) Cancel(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageOwnBookings) {
		return nil, fmt.Errorf("cancel reservation: %w", entity.ErrForbidden)
	}

	reservation, err := s.findOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.CustomerID != actor.ID && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	if !reservation.Status.IsActive() {
		return nil, fmt.Errorf("%w: only pending or confirmed reservations can be cancelled", entity.ErrValidation)
	}

	return s.transition(ctx, reservation, entity.ReservationStatusCanceled, reservation.ProviderID, entity.NotificationReservationCancelled)
}

// providerOwned loads the reservation for the provider-side transitions.
// Admins may act on any reservation.
func (s *reservationService) providerOwned(ctx context.Context, actor *entity.User, reservationID string) (*entity.Reservation, error) {
	if !permission.Allowed(actor.Role, permission.OpManageReceived) {
		return nil, fmt.Errorf("manage reservation: %w", entity.ErrForbidden)
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", entity.ErrValidation, reservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	if reservation.ProviderID != actor.ID && actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, entity.ErrNotFound)
	}

	return reservation, nil
}

// transition persists the status change and notifies the recipient.
func (s *reservationService) transition(ctx context.Context, reservation *entity.Reservation, status entity.ReservationStatus, notifyUserID uuid.UUID, notifyType entity.NotificationType) (*response.ReservationResponse, error) {
	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, status); err != nil {
		s.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	reservation.Status = status
	reservation.UpdatedAt = time.Now()

	serviceName := "service"
	if service, err := s.repo.Service.FindByID(ctx, reservation.ServiceID); err == nil && service != nil {
		serviceName = service.Name
	}
	s.notify(ctx, notifyUserID, notifyType, serviceName, reservation.ID)

	s.log.Info("Reservation status changed",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("status", string(status)),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

func (s *reservationService) Confirm(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.providerOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, reservation, entity.ReservationStatusConfirmed, reservation.CustomerID, entity.NotificationReservationConfirmed)
}

func (s *reservationService) Reject(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.providerOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, reservation, entity.ReservationStatusCanceled, reservation.CustomerID, entity.NotificationReservationCancelled)
}

func (s *reservationService) Complete(ctx context.Context, actor *entity.User, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.providerOwned(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, reservation, entity.ReservationStatusCompleted, reservation.CustomerID, entity.NotificationReservationCompleted)
}
