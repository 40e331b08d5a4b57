package service

import (
	"context"

	"festhub/internal/domain"
	"festhub/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultNotificationLimit caps the notification list shown to a user.
const DefaultNotificationLimit = 20

type NotificationService struct {
	notificationStorage storage.NotificationStorage
	log                 *logrus.Entry

	// relay, when set, receives a copy of every appended notification.
	// Delivery is best effort and never fails the append.
	relay func(domain.Notification)
}

func NewNotificationService(l *logrus.Logger, notificationStorage storage.NotificationStorage) *NotificationService {
	return &NotificationService{
		notificationStorage: notificationStorage,
		log: l.WithFields(map[string]interface{}{
			"from": "notification-service",
		}),
	}
}

func (s *NotificationService) SetRelay(relay func(domain.Notification)) {
	s.relay = relay
}

func (s *NotificationService) Append(ctx context.Context, notif domain.Notification) error {
	err := s.notificationStorage.Append(ctx, notif)
	if err != nil {
		return err
	}
	s.Relay(notif)
	return nil
}

// Relay forwards an already stored notification to the configured relay.
// Used by workflows that append notifications inside their own storage
// transaction.
func (s *NotificationService) Relay(notif domain.Notification) {
	if s == nil || s.relay == nil {
		return
	}
	s.relay(notif)
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.notificationStorage.ListForUser(ctx, userID, DefaultNotificationLimit)
}

func (s *NotificationService) Unread(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.notificationStorage.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationStorage.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.notificationStorage.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.notificationStorage.Delete(ctx, id)
}

func (s *NotificationService) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	s.log.WithField("user", userID).Info("clearing notifications")
	return s.notificationStorage.DeleteAll(ctx, userID)
}
