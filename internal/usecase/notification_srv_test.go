package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) addNotification(user *entity.User, read bool) *entity.Notification {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Type:       entity.NotificationSystem,
		Title:      "Notice",
		Message:    "Something happened",
		IsRead:     read,
	}
	e.notifications.notifications[notification.ID] = notification
	return notification
}

func TestNotificationListWithUnreadCount(t *testing.T) {
	env := newTestEnv()
	svc := NewNotificationService(env.repo, testLogger())
	user := env.addUser(entity.RoleUser)

	env.addNotification(user, false)
	env.addNotification(user, false)
	env.addNotification(user, true)

	resp, err := svc.List(context.Background(), user, false, 0)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 3)
	assert.Equal(t, int64(2), resp.UnreadCount)

	unread, err := svc.List(context.Background(), user, true, 0)
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 2)
}

func TestNotificationMarkReadOwnerOnly(t *testing.T) {
	env := newTestEnv()
	svc := NewNotificationService(env.repo, testLogger())

	owner := env.addUser(entity.RoleUser)
	other := env.addUser(entity.RoleUser)
	notification := env.addNotification(owner, false)

	err := svc.MarkRead(context.Background(), other, notification.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, svc.MarkRead(context.Background(), owner, notification.ID.String()))

	count, err := svc.UnreadCount(context.Background(), owner)
	require.NoError(t, err)
	assert.Zero(t, count.UnreadCount)
}

func TestNotificationMarkAllRead(t *testing.T) {
	env := newTestEnv()
	svc := NewNotificationService(env.repo, testLogger())

	user := env.addUser(entity.RoleUser)
	bystander := env.addUser(entity.RoleUser)
	env.addNotification(user, false)
	env.addNotification(user, false)
	env.addNotification(bystander, false)

	count, err := svc.MarkAllRead(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The bystander's notification is untouched.
	left, _ := env.notifications.CountUnread(context.Background(), bystander.ID)
	assert.Equal(t, int64(1), left)
}

func TestNotificationDeleteOwnerOnly(t *testing.T) {
	env := newTestEnv()
	svc := NewNotificationService(env.repo, testLogger())

	owner := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)
	notification := env.addNotification(owner, false)

	// Notifications are personal, admin role does not override ownership.
	err := svc.Delete(context.Background(), admin, notification.ID.String())
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), owner, notification.ID.String()))
}
