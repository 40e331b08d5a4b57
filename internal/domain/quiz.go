package domain

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionRating         QuestionType = "rating"
	QuestionText           QuestionType = "text"
)

// Question IDs are the question's ordinal within its template. Answers
// reference questions by this id, not by position in the answers slice.
type Question struct {
	ID            int
	Text          string
	Type          QuestionType
	Options       []string
	CorrectAnswer string
	Explanation   string
}

type QuizTemplate struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Title       string
	Description string
	IsQuiz      bool
	Questions   []Question
}

type Answer struct {
	QuestionID   int
	QuestionText string
	QuestionType QuestionType
	Answer       string
}

type QuizResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	EventID        uuid.UUID
	EventTitle     string
	TemplateID     uuid.UUID
	Title          string
	IsQuiz         bool
	Answers        []Answer
	Score          int
	CorrectAnswers int
	TotalQuestions int
	PointsEarned   int
	CompletedAt    time.Time
}
