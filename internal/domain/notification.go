package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationRegistration NotificationType = "registration"
	NotificationCancellation NotificationType = "cancellation"
	NotificationUpdate       NotificationType = "update"
	NotificationReminder     NotificationType = "reminder"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}
