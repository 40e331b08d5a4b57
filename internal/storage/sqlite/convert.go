package sqlite

import (
	"strings"

	"festhub/gen/model"
	"festhub/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

func convertUserToDomain(user model.Users, events []model.UserEvents, quizzes []model.UserQuizzes) (domain.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return domain.User{}, err
	}
	registered := mapset.NewSet[uuid.UUID]()
	for _, ue := range events {
		eventID, err := uuid.Parse(ue.EventID)
		if err != nil {
			return domain.User{}, err
		}
		registered.Add(eventID)
	}
	completed := mapset.NewSet[uuid.UUID]()
	for _, uq := range quizzes {
		quizID, err := uuid.Parse(uq.QuizID)
		if err != nil {
			return domain.User{}, err
		}
		completed.Add(quizID)
	}
	return domain.User{
		ID:                 id,
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Bio:                user.Bio,
		Interests:          splitInterests(user.Interests),
		PhotoURL:           user.PhotoURL,
		EmailNotifications: user.EmailNotifications,
		Points:             int(user.Points),
		RegisteredEvents:   registered,
		QuizzesCompleted:   completed,
		CreatedAt:          user.CreatedAt,
	}, nil
}

func convertUserFromDomain(user domain.User) model.Users {
	return model.Users{
		ID:                 user.ID.String(),
		Name:               user.Name,
		Email:              user.Email,
		Phone:              user.Phone,
		Bio:                user.Bio,
		Interests:          joinInterests(user.Interests),
		PhotoURL:           user.PhotoURL,
		EmailNotifications: user.EmailNotifications,
		Points:             int32(user.Points),
		CreatedAt:          user.CreatedAt,
	}
}

func joinInterests(interests []string) string {
	return strings.Join(interests, ",")
}

func splitInterests(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func convertEventToDomain(event model.Events) (domain.Event, error) {
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return domain.Event{}, err
	}
	var capacity *int
	if event.Capacity != nil {
		c := int(*event.Capacity)
		capacity = &c
	}
	return domain.Event{
		ID:                 id,
		Title:              event.Title,
		Description:        event.Description,
		Location:           event.Location,
		Date:               event.EventDate,
		Capacity:           capacity,
		Price:              event.Price,
		Featured:           event.Featured,
		ImageURL:           event.ImageURL,
		RegistrationsCount: int(event.RegistrationsCount),
		CreatedAt:          event.CreatedAt,
	}, nil
}

func convertEventsToDomain(events []model.Events) ([]domain.Event, error) {
	converted := make([]domain.Event, 0, len(events))
	for _, event := range events {
		e, err := convertEventToDomain(event)
		if err != nil {
			return nil, err
		}
		converted = append(converted, e)
	}
	return converted, nil
}

func convertRegistrationFromDomain(reg domain.Registration) model.Registrations {
	return model.Registrations{
		ID:          reg.ID.String(),
		EventID:     reg.EventID.String(),
		EventTitle:  reg.EventTitle,
		Name:        reg.Name,
		Email:       reg.Email,
		Phone:       reg.Phone,
		Source:      reg.Source,
		Comments:    reg.Comments,
		Status:      string(reg.Status),
		CreatedAt:   reg.CreatedAt,
		CancelledAt: reg.CancelledAt,
	}
}

func convertTemplateToDomain(template model.QuizTemplates, questions []model.QuizQuestions) (domain.QuizTemplate, error) {
	id, err := uuid.Parse(template.ID)
	if err != nil {
		return domain.QuizTemplate{}, err
	}
	eventID, err := uuid.Parse(template.EventID)
	if err != nil {
		return domain.QuizTemplate{}, err
	}
	converted := domain.QuizTemplate{
		ID:          id,
		EventID:     eventID,
		Title:       template.Title,
		Description: template.Description,
		IsQuiz:      template.IsQuiz,
	}
	for _, q := range questions {
		question := domain.Question{
			ID:   int(q.Ord),
			Text: q.Text,
			Type: domain.QuestionType(q.Qtype),
		}
		if q.Options != "" {
			question.Options = strings.Split(q.Options, "|")
		}
		if q.CorrectAnswer != nil {
			question.CorrectAnswer = *q.CorrectAnswer
		}
		if q.Explanation != nil {
			question.Explanation = *q.Explanation
		}
		converted.Questions = append(converted.Questions, question)
	}
	return converted, nil
}

func convertResultToDomain(result model.QuizResults, answers []model.QuizAnswers) (domain.QuizResult, error) {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	userID, err := uuid.Parse(result.UserID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	eventID, err := uuid.Parse(result.EventID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	templateID, err := uuid.Parse(result.TemplateID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	converted := domain.QuizResult{
		ID:             id,
		UserID:         userID,
		EventID:        eventID,
		EventTitle:     result.EventTitle,
		TemplateID:     templateID,
		Title:          result.Title,
		IsQuiz:         result.IsQuiz,
		Score:          int(result.Score),
		CorrectAnswers: int(result.CorrectAnswers),
		TotalQuestions: int(result.TotalQuestions),
		PointsEarned:   int(result.PointsEarned),
		CompletedAt:    result.CompletedAt,
	}
	for _, a := range answers {
		converted.Answers = append(converted.Answers, domain.Answer{
			QuestionID:   int(a.QuestionID),
			QuestionText: a.QuestionText,
			QuestionType: domain.QuestionType(a.QuestionType),
			Answer:       a.Answer,
		})
	}
	return converted, nil
}

func convertNotificationFromDomain(notif domain.Notification) model.Notifications {
	return model.Notifications{
		ID:        notif.ID.String(),
		UserID:    notif.UserID.String(),
		Title:     notif.Title,
		Message:   notif.Message,
		Ntype:     string(notif.Type),
		Read:      notif.Read,
		CreatedAt: notif.CreatedAt,
	}
}

func convertNotificationsToDomain(notifs []model.Notifications) ([]domain.Notification, error) {
	converted := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		id, err := uuid.Parse(n.ID)
		if err != nil {
			return nil, err
		}
		userID, err := uuid.Parse(n.UserID)
		if err != nil {
			return nil, err
		}
		converted = append(converted, domain.Notification{
			ID:        id,
			UserID:    userID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      domain.NotificationType(n.Ntype),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return converted, nil
}
