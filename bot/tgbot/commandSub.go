package tgbot

import (
	"festhub/bot/botstorage"
	"festhub/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	subs       *subscriptions
}

func (c *SubCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if user.FesthubUserID == uuid.Nil {
		resp.Text = "Link your account first: /link your@email.com"
		return nil
	}
	err := c.botStorage.Subscribe(user)
	if err != nil {
		return err
	}
	c.subs.Add(user.FesthubUserID, user.ID)
	resp.Text = "Subscribed. You will get your notifications here, /unsub to stop."
	return nil
}

func (c *SubCommand) Help() string {
	return "Subscribes this chat to your notifications"
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
