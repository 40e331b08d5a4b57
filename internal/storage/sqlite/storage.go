package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"festhub/gen/model"
	"festhub/gen/table"
	"festhub/internal/config"
	"festhub/internal/domain"
	sqlite3 "festhub/internal/migrate"
	"festhub/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.EventStorage = (*Storage)(nil)
var _ storage.RegistrationStorage = (*Storage)(nil)
var _ storage.QuizStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "server-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("server storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) CreateUser(ctx context.Context, user domain.User) error {
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.getUser(ctx, table.Users.ID.EQ(sqlite.UUID(id)))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.getUser(ctx, table.Users.Email.EQ(sqlite.String(email)))
}

func (s *Storage) getUser(ctx context.Context, where sqlite.BoolExpression) (domain.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		WHERE(where).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	var userEvents []model.UserEvents
	err = table.UserEvents.
		SELECT(table.UserEvents.AllColumns).
		WHERE(table.UserEvents.UserID.EQ(sqlite.String(dbUser.ID))).
		QueryContext(ctx, s.db, &userEvents)
	if err != nil {
		return domain.User{}, err
	}
	var userQuizzes []model.UserQuizzes
	err = table.UserQuizzes.
		SELECT(table.UserQuizzes.AllColumns).
		WHERE(table.UserQuizzes.UserID.EQ(sqlite.String(dbUser.ID))).
		QueryContext(ctx, s.db, &userQuizzes)
	if err != nil {
		return domain.User{}, err
	}
	return convertUserToDomain(dbUser, userEvents, userQuizzes)
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		ORDER_BY(table.Users.Points.DESC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	var userEvents []model.UserEvents
	err = table.UserEvents.
		SELECT(table.UserEvents.AllColumns).
		QueryContext(ctx, s.db, &userEvents)
	if err != nil {
		return nil, err
	}
	var userQuizzes []model.UserQuizzes
	err = table.UserQuizzes.
		SELECT(table.UserQuizzes.AllColumns).
		QueryContext(ctx, s.db, &userQuizzes)
	if err != nil {
		return nil, err
	}
	eventsByUser := make(map[string][]model.UserEvents)
	for _, ue := range userEvents {
		eventsByUser[ue.UserID] = append(eventsByUser[ue.UserID], ue)
	}
	quizzesByUser := make(map[string][]model.UserQuizzes)
	for _, uq := range userQuizzes {
		quizzesByUser[uq.UserID] = append(quizzesByUser[uq.UserID], uq)
	}
	converted := make([]domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		user, err := convertUserToDomain(dbUser, eventsByUser[dbUser.ID], quizzesByUser[dbUser.ID])
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, user domain.User) error {
	res, err := table.Users.
		UPDATE(
			table.Users.Name,
			table.Users.Phone,
			table.Users.Bio,
			table.Users.Interests,
			table.Users.PhotoURL,
			table.Users.EmailNotifications,
		).
		SET(
			user.Name,
			user.Phone,
			user.Bio,
			joinInterests(user.Interests),
			user.PhotoURL,
			user.EmailNotifications,
		).
		WHERE(table.Users.ID.EQ(sqlite.UUID(user.ID))).
		ExecContext(ctx, s.db)
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
	return nil
}
