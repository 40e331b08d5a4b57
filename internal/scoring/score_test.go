package scoring

import (
	"testing"

	"festhub/internal/domain"
)

func mcq(id int, correct string) domain.Question {
	return domain.Question{
		ID:            id,
		Text:          "q",
		Type:          domain.QuestionMultipleChoice,
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: correct,
	}
}

func ans(id int, text string) domain.Answer {
	return domain.Answer{QuestionID: id, Answer: text}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		template    domain.QuizTemplate
		answers     []domain.Answer
		wantScore   int
		wantCorrect int
	}{
		{
			name: "3 of 4 correct",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a"), mcq(1, "b"), mcq(2, "c"), mcq(3, "a")},
			},
			answers:     []domain.Answer{ans(0, "a"), ans(1, "b"), ans(2, "c"), ans(3, "b")},
			wantScore:   75,
			wantCorrect: 3,
		},
		{
			name: "all correct",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a"), mcq(1, "b")},
			},
			answers:     []domain.Answer{ans(0, "a"), ans(1, "b")},
			wantScore:   100,
			wantCorrect: 2,
		},
		{
			name: "all wrong",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a"), mcq(1, "b")},
			},
			answers:     []domain.Answer{ans(0, "b"), ans(1, "a")},
			wantScore:   0,
			wantCorrect: 0,
		},
		{
			name: "answers out of order match by id",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a"), mcq(1, "b")},
			},
			answers:     []domain.Answer{ans(1, "b"), ans(0, "a")},
			wantScore:   100,
			wantCorrect: 2,
		},
		{
			name: "duplicate id keeps first",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a")},
			},
			answers:     []domain.Answer{ans(0, "b"), ans(0, "a")},
			wantScore:   0,
			wantCorrect: 0,
		},
		{
			name: "unknown id is wrong",
			template: domain.QuizTemplate{
				IsQuiz:    true,
				Questions: []domain.Question{mcq(0, "a"), mcq(1, "b"), mcq(2, "c")},
			},
			answers:     []domain.Answer{ans(0, "a"), ans(7, "b")},
			wantScore:   33,
			wantCorrect: 1,
		},
		{
			name: "ungraded question types count toward total",
			template: domain.QuizTemplate{
				IsQuiz: true,
				Questions: []domain.Question{
					mcq(0, "a"),
					{ID: 1, Type: domain.QuestionRating},
					{ID: 2, Type: domain.QuestionText},
				},
			},
			answers:     []domain.Answer{ans(0, "a"), ans(1, "5"), ans(2, "great")},
			wantScore:   33,
			wantCorrect: 1,
		},
		{
			name: "feedback always zero",
			template: domain.QuizTemplate{
				IsQuiz:    false,
				Questions: []domain.Question{mcq(0, "a")},
			},
			answers:     []domain.Answer{ans(0, "a")},
			wantScore:   0,
			wantCorrect: 0,
		},
		{
			name:        "empty template",
			template:    domain.QuizTemplate{IsQuiz: true},
			answers:     nil,
			wantScore:   0,
			wantCorrect: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct := Score(tt.template, tt.answers)
			if score != tt.wantScore {
				t.Errorf("Score() score = %v, want %v", score, tt.wantScore)
			}
			if correct != tt.wantCorrect {
				t.Errorf("Score() correct = %v, want %v", correct, tt.wantCorrect)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name   string
		isQuiz bool
		score  int
		want   int
	}{
		{name: "quiz 75 percent", isQuiz: true, score: 75, want: 37},
		{name: "quiz perfect", isQuiz: true, score: 100, want: 50},
		{name: "quiz zero floors at 10", isQuiz: true, score: 0, want: 10},
		{name: "quiz low floors at 10", isQuiz: true, score: 15, want: 10},
		{name: "quiz boundary 20 percent", isQuiz: true, score: 20, want: 10},
		{name: "quiz 33 percent", isQuiz: true, score: 33, want: 16},
		{name: "feedback flat 20", isQuiz: false, score: 0, want: 20},
		{name: "feedback ignores score", isQuiz: false, score: 100, want: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Points(tt.isQuiz, tt.score); got != tt.want {
				t.Errorf("Points() = %v, want %v", got, tt.want)
			}
		})
	}
}
