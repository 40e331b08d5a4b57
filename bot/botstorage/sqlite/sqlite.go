package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"festhub/bot/botstorage"
	dbmodel "festhub/bot/gen/model"
	"festhub/bot/gen/table"
	"festhub/bot/model"
	"festhub/internal/config"
	sqlite3 "festhub/internal/migrate"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbuser dbmodel.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.Users.AllColumns).
		Query(s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbuser)
}

func (s *Storage) GetUser(id int64) (model.User, error) {
	var dbuser dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		Query(s.db, &dbuser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.User{}, sql.ErrNoRows
		}
		return model.User{}, err
	}
	return convertUserToDomain(dbuser)
}

func (s *Storage) ListSubscribed() ([]model.User, error) {
	var dbusers []dbmodel.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		WHERE(table.Users.Subscribed.IS_TRUE()).
		Query(s.db, &dbusers)
	if err != nil {
		return nil, err
	}
	converted := make([]model.User, 0, len(dbusers))
	for i := range dbusers {
		user, err := convertUserToDomain(dbusers[i])
		if err != nil {
			return nil, err
		}
		converted = append(converted, user)
	}
	return converted, nil
}

func (s *Storage) Subscribe(user model.User) error {
	return s.setSubscribed(user.ID, true)
}

func (s *Storage) Unsubscribe(user model.User) error {
	return s.setSubscribed(user.ID, false)
}

func (s *Storage) setSubscribed(id int64, subscribed bool) error {
	_, err := table.Users.
		UPDATE(table.Users.Subscribed, table.Users.UpdatedAt).
		SET(subscribed, time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		Exec(s.db)
	return err
}

func (s *Storage) LinkProfile(user model.User, festhubUserID uuid.UUID) error {
	_, err := table.Users.
		UPDATE(table.Users.FesthubUserID, table.Users.UpdatedAt).
		SET(festhubUserID.String(), time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		Exec(s.db)
	return err
}

func (s *Storage) Log(user model.User, msg string) error {
	message := dbmodel.MessageLog{
		UserID:    int32(user.ID),
		Message:   msg,
		CreatedAt: time.Now(),
	}
	_, err := table.MessageLog.
		INSERT(table.MessageLog.UserID, table.MessageLog.Message, table.MessageLog.CreatedAt).
		MODEL(message).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) dbmodel.Users {
	dbuser := dbmodel.Users{
		ID:         int32(user.ID),
		FirstName:  user.FirstName,
		Username:   user.Username,
		RoleID:     int32(user.Role),
		Subscribed: user.Subscribed,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
	if user.FesthubUserID != uuid.Nil {
		id := user.FesthubUserID.String()
		dbuser.FesthubUserID = &id
	}
	return dbuser
}

func convertUserToDomain(user dbmodel.Users) (model.User, error) {
	converted := model.User{
		ID:         int64(user.ID),
		FirstName:  user.FirstName,
		Username:   user.Username,
		Role:       model.UserRole(user.RoleID),
		Subscribed: user.Subscribed,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
	if user.FesthubUserID != nil {
		id, err := uuid.Parse(*user.FesthubUserID)
		if err != nil {
			return model.User{}, err
		}
		converted.FesthubUserID = id
	}
	return converted, nil
}
