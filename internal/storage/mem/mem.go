// Package mem is an in-memory Store used by the service tests. It keeps
// the same transactional semantics as the sqlite implementation: every
// multi-document mutation applies under one lock, all or nothing.
package mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"festhub/internal/domain"
	"festhub/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type Storage struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]domain.User
	events        map[uuid.UUID]domain.Event
	registrations map[uuid.UUID]domain.Registration
	templates     map[uuid.UUID]domain.QuizTemplate
	results       map[uuid.UUID]domain.QuizResult
	notifications []domain.Notification
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.EventStorage = (*Storage)(nil)
var _ storage.RegistrationStorage = (*Storage)(nil)
var _ storage.QuizStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		users:         make(map[uuid.UUID]domain.User),
		events:        make(map[uuid.UUID]domain.Event),
		registrations: make(map[uuid.UUID]domain.Registration),
		templates:     make(map[uuid.UUID]domain.QuizTemplate),
		results:       make(map[uuid.UUID]domain.QuizResult),
	}
}

func (s *Storage) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *Storage) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *Storage) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (s *Storage) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	return users, nil
}

func (s *Storage) UpdateProfile(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Bio = user.Bio
	stored.Interests = append([]string(nil), user.Interests...)
	stored.PhotoURL = user.PhotoURL
	stored.EmailNotifications = user.EmailNotifications
	s.users[user.ID] = stored
	return nil
}

func (s *Storage) AddEvent(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
}

func (s *Storage) AddTemplate(template domain.QuizTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.ID] = template
}

func (s *Storage) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]domain.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sortByDate(events)
	return events, nil
}

func (s *Storage) ListFeatured(_ context.Context, limit int) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []domain.Event
	for _, event := range s.events {
		if event.Featured {
			events = append(events, event)
		}
	}
	sortByDate(events)
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *Storage) ListEventsByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []domain.Event
	for _, id := range ids {
		if event, ok := s.events[id]; ok {
			events = append(events, event)
		}
	}
	sortByDate(events)
	return events, nil
}

func (s *Storage) GetEvent(_ context.Context, id uuid.UUID) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	return event, nil
}

func (s *Storage) CreateRegistration(_ context.Context, userID uuid.UUID, reg domain.Registration, notif domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.registrations {
		if r.EventID == reg.EventID && r.Email == reg.Email && r.Status == domain.RegistrationActive {
			return domain.ErrAlreadyRegistered
		}
	}
	user, ok := s.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	event, ok := s.events[reg.EventID]
	if !ok {
		return domain.ErrNotFound
	}
	s.registrations[reg.ID] = reg
	user.RegisteredEvents.Add(reg.EventID)
	s.users[userID] = user
	event.RegistrationsCount++
	s.events[reg.EventID] = event
	s.notifications = append(s.notifications, notif)
	return nil
}

func (s *Storage) CancelRegistration(_ context.Context, userID uuid.UUID, eventID uuid.UUID, email string, cancelledAt time.Time, notif domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok || !user.RegisteredEvents.Contains(eventID) {
		return domain.ErrNotRegistered
	}
	user.RegisteredEvents.Remove(eventID)
	s.users[userID] = user
	if event, ok := s.events[eventID]; ok && event.RegistrationsCount > 0 {
		event.RegistrationsCount--
		s.events[eventID] = event
	}
	for id, r := range s.registrations {
		if r.EventID == eventID && r.Email == email && r.Status == domain.RegistrationActive {
			at := cancelledAt
			r.Status = domain.RegistrationCancelled
			r.CancelledAt = &at
			s.registrations[id] = r
		}
	}
	s.notifications = append(s.notifications, notif)
	return nil
}

func (s *Storage) Registration(id uuid.UUID) (domain.Registration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.registrations[id]
	return reg, ok
}

func (s *Storage) ActiveRegistrations(eventID uuid.UUID) []domain.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var regs []domain.Registration
	for _, r := range s.registrations {
		if r.EventID == eventID && r.Status == domain.RegistrationActive {
			regs = append(regs, r)
		}
	}
	return regs
}

func (s *Storage) TemplateForEvent(_ context.Context, eventID uuid.UUID) (domain.QuizTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, template := range s.templates {
		if template.EventID == eventID {
			return template, nil
		}
	}
	return domain.QuizTemplate{}, domain.ErrTemplateNotFound
}

func (s *Storage) Template(_ context.Context, id uuid.UUID) (domain.QuizTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	template, ok := s.templates[id]
	if !ok {
		return domain.QuizTemplate{}, domain.ErrTemplateNotFound
	}
	return template, nil
}

func (s *Storage) Result(_ context.Context, id uuid.UUID) (domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	if !ok {
		return domain.QuizResult{}, domain.ErrNotFound
	}
	return result, nil
}

func (s *Storage) ResultForUserEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, result := range s.results {
		if result.UserID == userID && result.EventID == eventID {
			return result, nil
		}
	}
	return domain.QuizResult{}, domain.ErrNotFound
}

func (s *Storage) ListResults(_ context.Context, userID uuid.UUID) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []domain.QuizResult
	for _, result := range s.results {
		if result.UserID == userID {
			results = append(results, result)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompletedAt.After(results[j].CompletedAt)
	})
	return results, nil
}

func (s *Storage) CreateResult(_ context.Context, result domain.QuizResult, notif domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results {
		if r.UserID == result.UserID && r.EventID == result.EventID {
			return domain.ErrAlreadyCompleted
		}
	}
	user, ok := s.users[result.UserID]
	if !ok {
		return domain.ErrNotFound
	}
	s.results[result.ID] = result
	user.QuizzesCompleted.Add(result.ID)
	user.Points += result.PointsEarned
	s.users[result.UserID] = user
	s.notifications = append(s.notifications, notif)
	return nil
}

func (s *Storage) Append(_ context.Context, notif domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, notif)
	return nil
}

func (s *Storage) ListForUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notifs []domain.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			notifs = append(notifs, n)
		}
	}
	sort.SliceStable(notifs, func(i, j int) bool {
		return notifs[i].CreatedAt.After(notifs[j].CreatedAt)
	})
	if len(notifs) > limit {
		notifs = notifs[:limit]
	}
	return notifs, nil
}

func (s *Storage) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *Storage) MarkRead(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
		}
	}
	return nil
}

func (s *Storage) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].Read = true
		}
	}
	return nil
}

func (s *Storage) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Storage) DeleteAll(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
	return nil
}

func cloneUser(user domain.User) domain.User {
	cloned := user
	cloned.Interests = append([]string(nil), user.Interests...)
	if user.RegisteredEvents != nil {
		cloned.RegisteredEvents = mapset.NewSet(user.RegisteredEvents.ToSlice()...)
	} else {
		cloned.RegisteredEvents = mapset.NewSet[uuid.UUID]()
	}
	if user.QuizzesCompleted != nil {
		cloned.QuizzesCompleted = mapset.NewSet(user.QuizzesCompleted.ToSlice()...)
	} else {
		cloned.QuizzesCompleted = mapset.NewSet[uuid.UUID]()
	}
	return cloned
}

func sortByDate(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
