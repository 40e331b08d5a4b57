package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"festhub/internal/domain"
	"festhub/internal/logger"
	"festhub/internal/storage/mem"

	"github.com/google/uuid"
)

func newTestStorage(t *testing.T) (*mem.Storage, domain.User, domain.Event) {
	t.Helper()
	st := mem.New()
	user := domain.NewUser(uuid.New(), "Alice Smith", "alice@example.com")
	if err := st.CreateUser(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	event := domain.Event{
		ID:       uuid.New(),
		Title:    "Summer Music Festival",
		Location: "Riverside Park",
		Date:     time.Now().Add(72 * time.Hour),
	}
	st.AddEvent(event)
	return st, user, event
}

func newServices(st *mem.Storage) (*RegistrationService, *QuizService, *NotificationService) {
	notifications := NewNotificationService(logger.New(false), st)
	registrations := NewRegistrationService(st, st, notifications)
	quizzes := NewQuizService(st, st, notifications)
	return registrations, quizzes, notifications
}

func TestRegister(t *testing.T) {
	st, user, event := newTestStorage(t)
	registrations, _, notifications := newServices(st)
	ctx := context.Background()

	reg, err := registrations.Register(ctx, user, event.ID, RegistrationForm{Phone: "555-0101"})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Status != domain.RegistrationActive {
		t.Errorf("status = %q, want %q", reg.Status, domain.RegistrationActive)
	}
	if reg.Name != "Alice Smith" || reg.Email != "alice@example.com" {
		t.Errorf("profile fallback not applied: %q %q", reg.Name, reg.Email)
	}
	if reg.EventTitle != event.Title {
		t.Errorf("event title = %q, want %q", reg.EventTitle, event.Title)
	}

	got, err := st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegistrationsCount != 1 {
		t.Errorf("registrations count = %d, want 1", got.RegistrationsCount)
	}
	stored, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsRegistered(event.ID) {
		t.Error("event missing from user's registered set")
	}

	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Title != "Registration Confirmed" {
		t.Errorf("notification title = %q", notifs[0].Title)
	}
	want := "You have successfully registered for Summer Music Festival"
	if notifs[0].Message != want {
		t.Errorf("notification message = %q, want %q", notifs[0].Message, want)
	}
}

func TestRegisterTwice(t *testing.T) {
	st, user, event := newTestStorage(t)
	registrations, _, _ := newServices(st)
	ctx := context.Background()

	if _, err := registrations.Register(ctx, user, event.ID, RegistrationForm{}); err != nil {
		t.Fatal(err)
	}
	user, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = registrations.Register(ctx, user, event.ID, RegistrationForm{})
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
	got, err := st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegistrationsCount != 1 {
		t.Errorf("registrations count = %d, want 1", got.RegistrationsCount)
	}
}

func TestRegisterSameEmailConcurrentSession(t *testing.T) {
	// A stale user snapshot without the event must still be rejected by
	// the storage level uniqueness check.
	st, user, event := newTestStorage(t)
	registrations, _, _ := newServices(st)
	ctx := context.Background()

	if _, err := registrations.Register(ctx, user, event.ID, RegistrationForm{}); err != nil {
		t.Fatal(err)
	}
	_, err := registrations.Register(ctx, user, event.ID, RegistrationForm{})
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("err = %v, want ErrAlreadyRegistered", err)
	}
}

func TestCancel(t *testing.T) {
	st, user, event := newTestStorage(t)
	registrations, _, notifications := newServices(st)
	ctx := context.Background()

	reg, err := registrations.Register(ctx, user, event.ID, RegistrationForm{})
	if err != nil {
		t.Fatal(err)
	}
	user, err = st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if err := registrations.Cancel(ctx, user, event.ID); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegistrationsCount != 0 {
		t.Errorf("registrations count = %d, want 0", got.RegistrationsCount)
	}
	stored, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.IsRegistered(event.ID) {
		t.Error("event still in user's registered set")
	}
	cancelled, ok := st.Registration(reg.ID)
	if !ok {
		t.Fatal("registration row disappeared")
	}
	if cancelled.Status != domain.RegistrationCancelled {
		t.Errorf("status = %q, want %q", cancelled.Status, domain.RegistrationCancelled)
	}
	if cancelled.CancelledAt == nil {
		t.Error("cancelled registration has no timestamp")
	}

	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifs))
	}
	if notifs[0].Title != "Registration Cancelled" {
		t.Errorf("newest notification title = %q", notifs[0].Title)
	}

	// Cancelling again is rejected, nothing changes.
	stored, err = st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	err = registrations.Cancel(ctx, stored, event.ID)
	if !errors.Is(err, domain.ErrNotRegistered) {
		t.Fatalf("err = %v, want ErrNotRegistered", err)
	}
	got, err = st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegistrationsCount != 0 {
		t.Errorf("registrations count after repeat cancel = %d, want 0", got.RegistrationsCount)
	}
}

func TestRegisterCancelRegisterAgain(t *testing.T) {
	st, user, event := newTestStorage(t)
	registrations, _, _ := newServices(st)
	ctx := context.Background()

	if _, err := registrations.Register(ctx, user, event.ID, RegistrationForm{}); err != nil {
		t.Fatal(err)
	}
	user, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if err := registrations.Cancel(ctx, user, event.ID); err != nil {
		t.Fatal(err)
	}
	user, err = st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := registrations.Register(ctx, user, event.ID, RegistrationForm{}); err != nil {
		t.Fatalf("re-register after cancel: %v", err)
	}
	got, err := st.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RegistrationsCount != 1 {
		t.Errorf("registrations count = %d, want 1", got.RegistrationsCount)
	}
	if len(st.ActiveRegistrations(event.ID)) != 1 {
		t.Errorf("active registrations = %d, want 1", len(st.ActiveRegistrations(event.ID)))
	}
}

func quizTemplate(eventID uuid.UUID) domain.QuizTemplate {
	return domain.QuizTemplate{
		ID:      uuid.New(),
		EventID: eventID,
		Title:   "Festival Trivia",
		IsQuiz:  true,
		Questions: []domain.Question{
			{ID: 0, Text: "Q1", Type: domain.QuestionMultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "a"},
			{ID: 1, Text: "Q2", Type: domain.QuestionMultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "b"},
			{ID: 2, Text: "Q3", Type: domain.QuestionMultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "a"},
			{ID: 3, Text: "Q4", Type: domain.QuestionMultipleChoice, Options: []string{"a", "b"}, CorrectAnswer: "b"},
		},
	}
}

func TestSubmitQuiz(t *testing.T) {
	st, user, event := newTestStorage(t)
	_, quizzes, notifications := newServices(st)
	st.AddTemplate(quizTemplate(event.ID))
	ctx := context.Background()

	answers := []domain.Answer{
		{QuestionID: 0, Answer: "a"},
		{QuestionID: 1, Answer: "b"},
		{QuestionID: 2, Answer: "a"},
		{QuestionID: 3, Answer: "a"},
	}
	result, err := quizzes.Submit(ctx, user.ID, event.ID, answers)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 75 || result.CorrectAnswers != 3 || result.TotalQuestions != 4 {
		t.Errorf("score = %d/%d of %d, want 75, 3 of 4", result.Score, result.CorrectAnswers, result.TotalQuestions)
	}
	if result.PointsEarned != 37 {
		t.Errorf("points = %d, want 37", result.PointsEarned)
	}

	stored, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Points != 37 {
		t.Errorf("user points = %d, want 37", stored.Points)
	}

	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Title != "Quiz Completed" {
		t.Errorf("notification title = %q", notifs[0].Title)
	}
	want := `You scored 75% on the "Festival Trivia" quiz and earned 37 points!`
	if notifs[0].Message != want {
		t.Errorf("notification message = %q, want %q", notifs[0].Message, want)
	}
}

func TestSubmitQuizTwice(t *testing.T) {
	st, user, event := newTestStorage(t)
	_, quizzes, _ := newServices(st)
	st.AddTemplate(quizTemplate(event.ID))
	ctx := context.Background()

	answers := []domain.Answer{{QuestionID: 0, Answer: "a"}}
	if _, err := quizzes.Submit(ctx, user.ID, event.ID, answers); err != nil {
		t.Fatal(err)
	}
	before, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = quizzes.Submit(ctx, user.ID, event.ID, answers)
	if !errors.Is(err, domain.ErrAlreadyCompleted) {
		t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
	}
	after, err := st.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if after.Points != before.Points {
		t.Errorf("points changed on rejected submit: %d -> %d", before.Points, after.Points)
	}
}

func TestSubmitFeedback(t *testing.T) {
	st, user, event := newTestStorage(t)
	_, quizzes, notifications := newServices(st)
	st.AddTemplate(domain.QuizTemplate{
		ID:      uuid.New(),
		EventID: event.ID,
		Title:   "Event Feedback",
		IsQuiz:  false,
		Questions: []domain.Question{
			{ID: 0, Text: "Rate the event", Type: domain.QuestionRating},
			{ID: 1, Text: "Any comments?", Type: domain.QuestionText},
		},
	})
	ctx := context.Background()

	result, err := quizzes.Submit(ctx, user.ID, event.ID, []domain.Answer{
		{QuestionID: 0, Answer: "5"},
		{QuestionID: 1, Answer: "great"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 0 {
		t.Errorf("feedback score = %d, want 0", result.Score)
	}
	if result.PointsEarned != 20 {
		t.Errorf("feedback points = %d, want 20", result.PointsEarned)
	}
	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if notifs[0].Title != "Feedback Submitted" {
		t.Errorf("notification title = %q", notifs[0].Title)
	}
	want := `Thank you for your feedback on the "Summer Music Festival" event! You earned 20 points.`
	if notifs[0].Message != want {
		t.Errorf("notification message = %q, want %q", notifs[0].Message, want)
	}
}

func TestSubmitWithoutTemplate(t *testing.T) {
	st, user, event := newTestStorage(t)
	_, quizzes, _ := newServices(st)

	_, err := quizzes.Submit(context.Background(), user.ID, event.ID, nil)
	if !errors.Is(err, domain.ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestCompleted(t *testing.T) {
	st, user, event := newTestStorage(t)
	_, quizzes, _ := newServices(st)
	st.AddTemplate(quizTemplate(event.ID))
	ctx := context.Background()

	_, done, err := quizzes.Completed(ctx, user.ID, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("completed before any submit")
	}
	if _, err := quizzes.Submit(ctx, user.ID, event.ID, nil); err != nil {
		t.Fatal(err)
	}
	result, done, err := quizzes.Completed(ctx, user.ID, event.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("not completed after submit")
	}
	if result.EventID != event.ID {
		t.Errorf("result event = %s, want %s", result.EventID, event.ID)
	}
}

func TestFeaturedEvents(t *testing.T) {
	st, _, _ := newTestStorage(t)
	events := NewEventService(st)
	ctx := context.Background()

	base := time.Now().Add(24 * time.Hour)
	for i := 0; i < 4; i++ {
		st.AddEvent(domain.Event{
			ID:       uuid.New(),
			Title:    fmt.Sprintf("f%d", i),
			Featured: true,
			Date:     base.Add(time.Duration(i) * time.Hour),
		})
	}
	featured, err := events.Featured(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(featured) != FeaturedLimit {
		t.Fatalf("featured = %d, want %d", len(featured), FeaturedLimit)
	}
	for i, event := range featured {
		if event.Title != fmt.Sprintf("f%d", i) {
			t.Errorf("featured[%d] = %q, want f%d", i, event.Title, i)
		}
	}

	if _, err := events.List(ctx); err != nil {
		t.Fatal(err)
	}
	featured, err = events.Featured(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(featured) != FeaturedLimit {
		t.Errorf("featured from cache = %d, want %d", len(featured), FeaturedLimit)
	}
}

func TestNotificationListCap(t *testing.T) {
	st, user, _ := newTestStorage(t)
	notifications := NewNotificationService(logger.New(false), st)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 25; i++ {
		err := notifications.Append(ctx, domain.Notification{
			ID:        uuid.New(),
			UserID:    user.ID,
			Title:     fmt.Sprintf("n%d", i),
			Type:      domain.NotificationUpdate,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != DefaultNotificationLimit {
		t.Fatalf("list length = %d, want %d", len(notifs), DefaultNotificationLimit)
	}
	if notifs[0].Title != "n24" {
		t.Errorf("newest first: got %q, want n24", notifs[0].Title)
	}
	if notifs[len(notifs)-1].Title != "n5" {
		t.Errorf("oldest kept: got %q, want n5", notifs[len(notifs)-1].Title)
	}
}

func TestMarkAllRead(t *testing.T) {
	st, user, _ := newTestStorage(t)
	notifications := NewNotificationService(logger.New(false), st)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := notifications.Append(ctx, domain.Notification{
			ID:     uuid.New(),
			UserID: user.ID,
			Type:   domain.NotificationUpdate,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	unread, err := notifications.Unread(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unread != 3 {
		t.Fatalf("unread = %d, want 3", unread)
	}
	if err := notifications.MarkAllRead(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	unread, err = notifications.Unread(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unread != 0 {
		t.Errorf("unread after mark all = %d, want 0", unread)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	st, user, _ := newTestStorage(t)
	notifications := NewNotificationService(logger.New(false), st)
	ctx := context.Background()

	id := uuid.New()
	err := notifications.Append(ctx, domain.Notification{
		ID:     id,
		UserID: user.ID,
		Type:   domain.NotificationUpdate,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := notifications.MarkRead(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := notifications.MarkRead(ctx, uuid.New()); err != nil {
		t.Errorf("mark read on unknown id: %v", err)
	}
	unread, err := notifications.Unread(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0", unread)
	}
	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 || !notifs[0].Read {
		t.Errorf("notifications = %+v, want one read row", notifs)
	}
}

func TestDeleteNotification(t *testing.T) {
	st, user, _ := newTestStorage(t)
	notifications := NewNotificationService(logger.New(false), st)
	ctx := context.Background()

	id := uuid.New()
	err := notifications.Append(ctx, domain.Notification{
		ID:     id,
		UserID: user.ID,
		Type:   domain.NotificationUpdate,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := notifications.Delete(ctx, uuid.New()); err != nil {
		t.Errorf("delete unknown id: %v", err)
	}
	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Fatalf("list after unknown delete = %d, want 1", len(notifs))
	}
	for i := 0; i < 2; i++ {
		if err := notifications.Delete(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	notifs, err = notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 0 {
		t.Errorf("list after delete = %d, want 0", len(notifs))
	}
}

func TestDeleteAllScopedToUser(t *testing.T) {
	st, user, _ := newTestStorage(t)
	notifications := NewNotificationService(logger.New(false), st)
	ctx := context.Background()

	other := domain.NewUser(uuid.New(), "Bob Jones", "bob@example.com")
	if err := st.CreateUser(ctx, other); err != nil {
		t.Fatal(err)
	}
	for _, userID := range []uuid.UUID{user.ID, user.ID, other.ID} {
		err := notifications.Append(ctx, domain.Notification{
			ID:     uuid.New(),
			UserID: userID,
			Type:   domain.NotificationUpdate,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := notifications.DeleteAll(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	notifs, err := notifications.List(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 0 {
		t.Errorf("own list after clear = %d, want 0", len(notifs))
	}
	notifs, err = notifications.List(ctx, other.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notifs) != 1 {
		t.Errorf("other user's list = %d, want 1", len(notifs))
	}
}

func TestNotificationRelay(t *testing.T) {
	st, user, event := newTestStorage(t)
	registrations, _, notifications := newServices(st)
	var relayed []domain.Notification
	notifications.SetRelay(func(n domain.Notification) {
		relayed = append(relayed, n)
	})

	if _, err := registrations.Register(context.Background(), user, event.ID, RegistrationForm{}); err != nil {
		t.Fatal(err)
	}
	if len(relayed) != 1 {
		t.Fatalf("relayed = %d, want 1", len(relayed))
	}
	if relayed[0].Title != "Registration Confirmed" {
		t.Errorf("relayed title = %q", relayed[0].Title)
	}
}
