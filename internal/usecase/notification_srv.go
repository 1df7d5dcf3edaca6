package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/response"
	"service-booking/internal/permission"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	List(ctx context.Context, actor *entity.User, unreadOnly bool, limit int) (*response.NotificationListResponse, error)
	UnreadCount(ctx context.Context, actor *entity.User) (*response.UnreadCountResponse, error)
	MarkRead(ctx context.Context, actor *entity.User, notificationID string) error
	MarkAllRead(ctx context.Context, actor *entity.User) (int64, error)
	Delete(ctx context.Context, actor *entity.User, notificationID string) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) List(ctx context.Context, actor *entity.User, unreadOnly bool, limit int) (*response.NotificationListResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageAlerts) {
		return nil, fmt.Errorf("list notifications: %w", entity.ErrForbidden)
	}

	notifications, err := s.repo.Notification.FindByUserID(ctx, actor.ID, unreadOnly, limit)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err))
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.repo.Notification.CountUnread(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err))
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	result := make([]response.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, response.NotificationToResponse(notification))
	}

	return &response.NotificationListResponse{
		Notifications: result,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, actor *entity.User) (*response.UnreadCountResponse, error) {
	if !permission.Allowed(actor.Role, permission.OpManageAlerts) {
		return nil, fmt.Errorf("count notifications: %w", entity.ErrForbidden)
	}

	unread, err := s.repo.Notification.CountUnread(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err))
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &response.UnreadCountResponse{UnreadCount: unread}, nil
}

// owned loads a notification and checks it belongs to the actor. Notifications
// are strictly personal, so even admins only touch their own.
func (s *notificationService) owned(ctx context.Context, actor *entity.User, notificationID string) (*entity.Notification, error) {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid notification ID %s", entity.ErrValidation, notificationID)
	}

	notification, err := s.repo.Notification.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find notification: %w", err)
	}
	if notification == nil || notification.UserID != actor.ID {
		return nil, fmt.Errorf("notification %s: %w", notificationID, entity.ErrNotFound)
	}

	return notification, nil
}

func (s *notificationService) MarkRead(ctx context.Context, actor *entity.User, notificationID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageAlerts) {
		return fmt.Errorf("mark notification read: %w", entity.ErrForbidden)
	}

	notification, err := s.owned(ctx, actor, notificationID)
	if err != nil {
		return err
	}

	if err := s.repo.Notification.MarkRead(ctx, notification.ID); err != nil {
		s.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", notificationID),
		)
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor *entity.User) (int64, error) {
	if !permission.Allowed(actor.Role, permission.OpManageAlerts) {
		return 0, fmt.Errorf("mark notifications read: %w", entity.ErrForbidden)
	}

	count, err := s.repo.Notification.MarkAllRead(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to mark notifications read", zap.Error(err))
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}

	s.log.Info("Notifications marked read",
		zap.String("user_id", actor.ID.String()),
		zap.Int64("count", count),
	)

	return count, nil
}

func (s *notificationService) Delete(ctx context.Context, actor *entity.User, notificationID string) error {
	if !permission.Allowed(actor.Role, permission.OpManageAlerts) {
		return fmt.Errorf("delete notification: %w", entity.ErrForbidden)
	}

	notification, err := s.owned(ctx, actor, notificationID)
	if err != nil {
		return err
	}

	if err := s.repo.Notification.Delete(ctx, notification.ID); err != nil {
		s.log.Error("Failed to delete notification",
			zap.Error(err),
			zap.String("notification_id", notificationID),
		)
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}
