package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationReservationNew       NotificationType = "new_reservation"
	NotificationReservationConfirmed NotificationType = "confirmed"
	NotificationReservationCancelled NotificationType = "cancelled"
	NotificationReservationCompleted NotificationType = "completed"
	NotificationReservationReminder  NotificationType = "reminder"
	NotificationNewReview            NotificationType = "new_review"
	NotificationSystem               NotificationType = "system"
)

type Notification struct {
	BaseSimple
	UserID  uuid.UUID        `db:"user_id"`
	Type    NotificationType `db:"type"`
	Title   string           `db:"title"`
	Message string           `db:"message"`
	IsRead  bool             `db:"is_read"`
	// ID of the related object (reservation, review), when there is one.
	RelatedID *uuid.UUID `db:"related_id"`
}

var reservationNotificationTitles = map[NotificationType]string{
	NotificationReservationNew:       "New reservation",
	NotificationReservationConfirmed: "Reservation confirmed",
	NotificationReservationCancelled: "Reservation cancelled",
	NotificationReservationCompleted: "Reservation completed",
	NotificationReservationReminder:  "Reservation reminder",
}

// ReservationNotificationContent builds the title and message carried by a
// reservation-lifecycle notification.
func ReservationNotificationContent(t NotificationType, serviceName string) (string, string) {
	title, ok := reservationNotificationTitles[t]
	if !ok {
		title = "Notification"
	}

	var message string
	switch t {
	case NotificationReservationNew:
		message = fmt.Sprintf("You have a new reservation for service: %s", serviceName)
	case NotificationReservationConfirmed:
		message = fmt.Sprintf("Your reservation for %s has been confirmed", serviceName)
	case NotificationReservationCancelled:
		message = fmt.Sprintf("The reservation for %s was cancelled", serviceName)
	case NotificationReservationCompleted:
		message = fmt.Sprintf("The service %s has been completed", serviceName)
	case NotificationReservationReminder:
		message = fmt.Sprintf("Reminder: you have a reservation for %s", serviceName)
	default:
		message = fmt.Sprintf("Notification about service: %s", serviceName)
	}

	return title, message
}
