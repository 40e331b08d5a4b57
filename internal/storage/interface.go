package storage

import (
	"context"
	"time"

	"festhub/internal/domain"

	"github.com/google/uuid"
)

type UserStorage interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, user domain.User) error
}

type EventStorage interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Event, error)
	ListEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
}

// RegistrationStorage mutations are atomic: every document touched by an
// operation, the notification included, commits in a single transaction
// or not at all.
type RegistrationStorage interface {
	// Create inserts an active registration, adds the event to the user's
	// registered set, increments the event counter and appends the
	// notification. Returns domain.ErrAlreadyRegistered if an active
	// registration for (event, email) already exists.
	CreateRegistration(ctx context.Context, userID uuid.UUID, reg domain.Registration, notif domain.Notification) error
	// Cancel removes the event from the user's registered set, decrements
	// the event counter (never below zero), marks every matching active
	// registration cancelled and appends the notification.
	CancelRegistration(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, email string, cancelledAt time.Time, notif domain.Notification) error
}

type QuizStorage interface {
	TemplateForEvent(ctx context.Context, eventID uuid.UUID) (domain.QuizTemplate, error)
	Template(ctx context.Context, id uuid.UUID) (domain.QuizTemplate, error)
	Result(ctx context.Context, id uuid.UUID) (domain.QuizResult, error)
	ResultForUserEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (domain.QuizResult, error)
	ListResults(ctx context.Context, userID uuid.UUID) ([]domain.QuizResult, error)
	// CreateResult inserts the result with its answers, adds it to the
	// user's completed set, adds the earned points to the user's total and
	// appends the notification, all in one transaction. Returns
	// domain.ErrAlreadyCompleted if a result for (user, event) exists.
	CreateResult(ctx context.Context, result domain.QuizResult, notif domain.Notification) error
}

type NotificationStorage interface {
	Append(ctx context.Context, notif domain.Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}
