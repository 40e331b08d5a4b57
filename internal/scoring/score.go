package scoring

import (
	"math"

	"festhub/internal/domain"
)

const (
	feedbackPoints = 20
	quizMinPoints  = 10
	quizMaxPoints  = 50
)

// Score grades submitted answers against a template.
// Answers are matched to questions by QuestionID; a missing, duplicate
// or unknown id counts as a wrong answer. Only multiple-choice questions
// with a defined correct answer are graded, but the percentage is taken
// over all questions of the template.
// Feedback templates (IsQuiz == false) always score 0.
func Score(template domain.QuizTemplate, answers []domain.Answer) (score int, correct int) {
	if !template.IsQuiz || len(template.Questions) == 0 {
		return 0, 0
	}
	byID := make(map[int]domain.Answer, len(answers))
	for _, a := range answers {
		if _, ok := byID[a.QuestionID]; ok {
			continue
		}
		byID[a.QuestionID] = a
	}
	for _, q := range template.Questions {
		if q.Type != domain.QuestionMultipleChoice || q.CorrectAnswer == "" {
			continue
		}
		if a, ok := byID[q.ID]; ok && a.Answer == q.CorrectAnswer {
			correct++
		}
	}
	score = int(math.Round(float64(correct) / float64(len(template.Questions)) * 100))
	return score, correct
}

// Points awards max(10, floor(score/100*50)) for quizzes and a flat 20
// for feedback submissions.
func Points(isQuiz bool, score int) int {
	if !isQuiz {
		return feedbackPoints
	}
	points := score * quizMaxPoints / 100
	if points < quizMinPoints {
		return quizMinPoints
	}
	return points
}
