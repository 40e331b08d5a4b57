package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festhub/internal/domain"
	"festhub/internal/scoring"
	"festhub/internal/storage"

	"github.com/google/uuid"
)

type QuizService struct {
	quizStorage   storage.QuizStorage
	eventStorage  storage.EventStorage
	notifications *NotificationService
}

func NewQuizService(quizStorage storage.QuizStorage, eventStorage storage.EventStorage, notifications *NotificationService) *QuizService {
	return &QuizService{
		quizStorage:   quizStorage,
		eventStorage:  eventStorage,
		notifications: notifications,
	}
}

func (s *QuizService) TemplateForEvent(ctx context.Context, eventID uuid.UUID) (domain.QuizTemplate, error) {
	return s.quizStorage.TemplateForEvent(ctx, eventID)
}

// Completed reports whether the user already has a result for the event,
// returning the result when one exists.
func (s *QuizService) Completed(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (domain.QuizResult, bool, error) {
	result, err := s.quizStorage.ResultForUserEvent(ctx, userID, eventID)
	switch {
	case err == nil:
		return result, true, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.QuizResult{}, false, nil
	default:
		return domain.QuizResult{}, false, err
	}
}

func (s *QuizService) Result(ctx context.Context, id uuid.UUID) (domain.QuizResult, error) {
	return s.quizStorage.Result(ctx, id)
}

func (s *QuizService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.QuizResult, error) {
	return s.quizStorage.ListResults(ctx, userID)
}

// Submit grades the answers against the event's template, stores the
// result and awards points to the user. A user submits at most once per
// event.
func (s *QuizService) Submit(ctx context.Context, userID uuid.UUID, eventID uuid.UUID, answers []domain.Answer) (domain.QuizResult, error) {
	template, err := s.quizStorage.TemplateForEvent(ctx, eventID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	event, err := s.eventStorage.GetEvent(ctx, eventID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	score, correct := scoring.Score(template, answers)
	result := domain.QuizResult{
		ID:             uuid.New(),
		UserID:         userID,
		EventID:        eventID,
		EventTitle:     event.Title,
		TemplateID:     template.ID,
		Title:          template.Title,
		IsQuiz:         template.IsQuiz,
		Answers:        answers,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(template.Questions),
		PointsEarned:   scoring.Points(template.IsQuiz, score),
		CompletedAt:    time.Now(),
	}
	notif := buildQuizNotification(userID, result)
	err = s.quizStorage.CreateResult(ctx, result, notif)
	if err != nil {
		return domain.QuizResult{}, err
	}
	s.notifications.Relay(notif)
	return result, nil
}

func buildQuizNotification(userID uuid.UUID, result domain.QuizResult) domain.Notification {
	title := "Feedback Submitted"
	message := fmt.Sprintf("Thank you for your feedback on the %q event! You earned %d points.", result.EventTitle, result.PointsEarned)
	if result.IsQuiz {
		title = "Quiz Completed"
		message = fmt.Sprintf("You scored %d%% on the %q quiz and earned %d points!", result.Score, result.Title, result.PointsEarned)
	}
	return domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      domain.NotificationUpdate,
		CreatedAt: result.CompletedAt,
	}
}
