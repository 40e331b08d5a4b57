package sqlite

import (
	"context"
	"errors"

	"festhub/gen/model"
	"festhub/gen/table"
	"festhub/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

func (s *Storage) TemplateForEvent(ctx context.Context, eventID uuid.UUID) (domain.QuizTemplate, error) {
	return s.getTemplate(ctx, table.QuizTemplates.EventID.EQ(sqlite.UUID(eventID)))
}

func (s *Storage) Template(ctx context.Context, id uuid.UUID) (domain.QuizTemplate, error) {
	return s.getTemplate(ctx, table.QuizTemplates.ID.EQ(sqlite.UUID(id)))
}

func (s *Storage) getTemplate(ctx context.Context, where sqlite.BoolExpression) (domain.QuizTemplate, error) {
	var dbTemplate model.QuizTemplates
	err := table.QuizTemplates.
		SELECT(table.QuizTemplates.AllColumns).
		WHERE(where).
		LIMIT(1).
		QueryContext(ctx, s.db, &dbTemplate)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.QuizTemplate{}, domain.ErrTemplateNotFound
		}
		return domain.QuizTemplate{}, err
	}
	var questions []model.QuizQuestions
	err = table.QuizQuestions.
		SELECT(table.QuizQuestions.AllColumns).
		WHERE(table.QuizQuestions.TemplateID.EQ(sqlite.String(dbTemplate.ID))).
		ORDER_BY(table.QuizQuestions.Ord.ASC()).
		QueryContext(ctx, s.db, &questions)
	if err != nil {
		return domain.QuizTemplate{}, err
	}
	return convertTemplateToDomain(dbTemplate, questions)
}

func (s *Storage) Result(ctx context.Context, id uuid.UUID) (domain.QuizResult, error) {
	var dbResult model.QuizResults
	err := table.QuizResults.
		SELECT(table.QuizResults.AllColumns).
		WHERE(table.QuizResults.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dbResult)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.QuizResult{}, domain.ErrNotFound
		}
		return domain.QuizResult{}, err
	}
	var answers []model.QuizAnswers
	err = table.QuizAnswers.
		SELECT(table.QuizAnswers.AllColumns).
		WHERE(table.QuizAnswers.ResultID.EQ(sqlite.String(dbResult.ID))).
		ORDER_BY(table.QuizAnswers.QuestionID.ASC()).
		QueryContext(ctx, s.db, &answers)
	if err != nil {
		return domain.QuizResult{}, err
	}
	return convertResultToDomain(dbResult, answers)
}

func (s *Storage) ResultForUserEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (domain.QuizResult, error) {
	var dbResult model.QuizResults
	err := table.QuizResults.
		SELECT(table.QuizResults.AllColumns).
		WHERE(
			table.QuizResults.UserID.EQ(sqlite.UUID(userID)).
				AND(table.QuizResults.EventID.EQ(sqlite.UUID(eventID))),
		).
		QueryContext(ctx, s.db, &dbResult)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.QuizResult{}, domain.ErrNotFound
		}
		return domain.QuizResult{}, err
	}
	return convertResultToDomain(dbResult, nil)
}

func (s *Storage) ListResults(ctx context.Context, userID uuid.UUID) ([]domain.QuizResult, error) {
	var dbResults []model.QuizResults
	err := table.QuizResults.
		SELECT(table.QuizResults.AllColumns).
		WHERE(table.QuizResults.UserID.EQ(sqlite.UUID(userID))).
		ORDER_BY(table.QuizResults.CompletedAt.DESC()).
		QueryContext(ctx, s.db, &dbResults)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.QuizResult, 0, len(dbResults))
	for _, dbResult := range dbResults {
		result, err := convertResultToDomain(dbResult, nil)
		if err != nil {
			return nil, err
		}
		converted = append(converted, result)
	}
	return converted, nil
}

func (s *Storage) CreateResult(ctx context.Context, result domain.QuizResult, notif domain.Notification) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existing []model.QuizResults
	err = table.QuizResults.
		SELECT(table.QuizResults.ID).
		WHERE(
			table.QuizResults.UserID.EQ(sqlite.UUID(result.UserID)).
				AND(table.QuizResults.EventID.EQ(sqlite.UUID(result.EventID))),
		).
		QueryContext(ctx, tx, &existing)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return domain.ErrAlreadyCompleted
	}

	_, err = table.QuizResults.
		INSERT(table.QuizResults.AllColumns).
		MODEL(model.QuizResults{
			ID:             result.ID.String(),
			UserID:         result.UserID.String(),
			EventID:        result.EventID.String(),
			EventTitle:     result.EventTitle,
			TemplateID:     result.TemplateID.String(),
			Title:          result.Title,
			IsQuiz:         result.IsQuiz,
			Score:          int32(result.Score),
			CorrectAnswers: int32(result.CorrectAnswers),
			TotalQuestions: int32(result.TotalQuestions),
			PointsEarned:   int32(result.PointsEarned),
			CompletedAt:    result.CompletedAt,
		}).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	for _, a := range result.Answers {
		_, err = table.QuizAnswers.
			INSERT(table.QuizAnswers.AllColumns).
			MODEL(model.QuizAnswers{
				ResultID:     result.ID.String(),
				QuestionID:   int32(a.QuestionID),
				QuestionText: a.QuestionText,
				QuestionType: string(a.QuestionType),
				Answer:       a.Answer,
			}).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}

	_, err = table.UserQuizzes.
		INSERT(table.UserQuizzes.AllColumns).
		MODEL(model.UserQuizzes{
			UserID: result.UserID.String(),
			QuizID: result.ID.String(),
		}).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	res, err := table.Users.
		UPDATE(table.Users.Points).
		SET(table.Users.Points.ADD(sqlite.Int32(int32(result.PointsEarned)))).
		WHERE(table.Users.ID.EQ(sqlite.UUID(result.UserID))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	_, err = table.Notifications.
		INSERT(table.Notifications.AllColumns).
		MODEL(convertNotificationFromDomain(notif)).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}

	return tx.Commit()
}
