package botstorage

import (
	"festhub/bot/model"

	"github.com/google/uuid"
)

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int64) (model.User, error)
	ListSubscribed() ([]model.User, error)
	Subscribe(user model.User) error
	Unsubscribe(user model.User) error
	LinkProfile(user model.User, festhubUserID uuid.UUID) error
	Log(user model.User, msg string) error
}
