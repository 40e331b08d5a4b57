package web

import (
	"errors"
	"strconv"

	"festhub/internal/domain"
	"festhub/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *Server) handleQuizGet(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	template, err := s.quizzes.TemplateForEvent(ctx.Context(), eventID)
	if errors.Is(err, domain.ErrTemplateNotFound) {
		return ctx.Status(fiber.StatusNotFound).Render("quizForm", newData("Quiz").
			WithUser(authUser).
			WithErrors(errors.New("no quiz is available for this event")), "layouts/main")
	}
	if err != nil {
		return err
	}
	result, done, err := s.quizzes.Completed(ctx.Context(), profile.ID, eventID)
	if err != nil {
		return err
	}
	if done {
		return ctx.Redirect(webpath.Api + "/quiz-results/" + result.ID.String())
	}
	return ctx.Render("quizForm", newData(template.Title).
		WithUser(authUser).
		With("Template", template).
		With("EventID", eventID), "layouts/main")
}

func (s *Server) handleQuizPost(ctx *fiber.Ctx) error {
	_, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	eventID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	template, err := s.quizzes.TemplateForEvent(ctx.Context(), eventID)
	if err != nil {
		return err
	}
	answers := parseAnswers(ctx, template)
	result, err := s.quizzes.Submit(ctx.Context(), profile.ID, eventID, answers)
	if errors.Is(err, domain.ErrAlreadyCompleted) {
		existing, _, err := s.quizzes.Completed(ctx.Context(), profile.ID, eventID)
		if err != nil {
			return err
		}
		return ctx.Redirect(webpath.Api + "/quiz-results/" + existing.ID.String())
	}
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Api + "/quiz-results/" + result.ID.String())
}

func (s *Server) handleQuizResult(ctx *fiber.Ctx) error {
	authUser, profile, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	result, err := s.quizzes.Result(ctx.Context(), id)
	if err != nil {
		return err
	}
	if result.UserID != profile.ID {
		return fiber.ErrForbidden
	}
	var template domain.QuizTemplate
	if result.IsQuiz {
		template, err = s.quizzes.TemplateForEvent(ctx.Context(), result.EventID)
		if err != nil && !errors.Is(err, domain.ErrTemplateNotFound) {
			return err
		}
	}
	return ctx.Render("quizResult", newData(result.Title).
		WithUser(authUser).
		With("Result", result).
		With("Template", template), "layouts/main")
}

// parseAnswers reads one form value per template question, named by the
// question's ordinal ("q0", "q1", ...).
func parseAnswers(ctx *fiber.Ctx, template domain.QuizTemplate) []domain.Answer {
	answers := make([]domain.Answer, 0, len(template.Questions))
	for _, question := range template.Questions {
		answers = append(answers, domain.Answer{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			QuestionType: question.Type,
			Answer:       ctx.FormValue("q" + strconv.Itoa(question.ID)),
		})
	}
	return answers
}
