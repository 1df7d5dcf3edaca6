package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	RelatedID *string   `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationToResponse(notification *entity.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        notification.ID.String(),
		UserID:    notification.UserID.String(),
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
	if notification.RelatedID != nil {
		related := notification.RelatedID.String()
		resp.RelatedID = &related
	}
	return resp
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
