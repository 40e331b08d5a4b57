package service

import (
	"context"
	"fmt"
	"time"

	"festhub/internal/domain"
	"festhub/internal/normalize"
	"festhub/internal/storage"

	"github.com/google/uuid"
)

type RegistrationService struct {
	registrationStorage storage.RegistrationStorage
	eventStorage        storage.EventStorage
	notifications       *NotificationService
}

func NewRegistrationService(
	registrationStorage storage.RegistrationStorage,
	eventStorage storage.EventStorage,
	notifications *NotificationService,
) *RegistrationService {
	return &RegistrationService{
		registrationStorage: registrationStorage,
		eventStorage:        eventStorage,
		notifications:       notifications,
	}
}

// RegistrationForm carries the attendee details submitted with a
// registration. Name and Email fall back to the user's profile when
// empty.
type RegistrationForm struct {
	Name     string
	Email    string
	Phone    string
	Source   string
	Comments string
}

func (s *RegistrationService) Register(ctx context.Context, user domain.User, eventID uuid.UUID, form RegistrationForm) (domain.Registration, error) {
	if user.IsRegistered(eventID) {
		return domain.Registration{}, domain.ErrAlreadyRegistered
	}
	event, err := s.eventStorage.GetEvent(ctx, eventID)
	if err != nil {
		return domain.Registration{}, err
	}
	name := form.Name
	if name == "" {
		name = user.Name
	}
	email := form.Email
	if email == "" {
		email = user.Email
	}
	now := time.Now()
	reg := domain.Registration{
		ID:         uuid.New(),
		EventID:    eventID,
		EventTitle: event.Title,
		Name:       normalize.Name(name),
		Email:      normalize.Email(email),
		Phone:      form.Phone,
		Source:     form.Source,
		Comments:   form.Comments,
		Status:     domain.RegistrationActive,
		CreatedAt:  now,
	}
	notif := domain.Notification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     "Registration Confirmed",
		Message:   fmt.Sprintf("You have successfully registered for %s", event.Title),
		Type:      domain.NotificationRegistration,
		CreatedAt: now,
	}
	err = s.registrationStorage.CreateRegistration(ctx, user.ID, reg, notif)
	if err != nil {
		return domain.Registration{}, err
	}
	s.notifications.Relay(notif)
	return reg, nil
}

func (s *RegistrationService) Cancel(ctx context.Context, user domain.User, eventID uuid.UUID) error {
	if !user.IsRegistered(eventID) {
		return domain.ErrNotRegistered
	}
	event, err := s.eventStorage.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	now := time.Now()
	notif := domain.Notification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Title:     "Registration Cancelled",
		Message:   fmt.Sprintf("You have cancelled your registration for %s", event.Title),
		Type:      domain.NotificationCancellation,
		CreatedAt: now,
	}
	err = s.registrationStorage.CancelRegistration(ctx, user.ID, eventID, normalize.Email(user.Email), now, notif)
	if err != nil {
		return err
	}
	s.notifications.Relay(notif)
	return nil
}

// ListForUser resolves the user's registered event set into events,
// split into upcoming and past relative to now.
func (s *RegistrationService) ListForUser(ctx context.Context, user domain.User) (upcoming, past []domain.Event, err error) {
	if user.RegisteredEvents == nil || user.RegisteredEvents.Cardinality() == 0 {
		return nil, nil, nil
	}
	events, err := s.eventStorage.ListEventsByIDs(ctx, user.RegisteredEvents.ToSlice())
	if err != nil {
		return nil, nil, err
	}
	upcoming, past = domain.SplitUpcoming(events, time.Now())
	return upcoming, past, nil
}
