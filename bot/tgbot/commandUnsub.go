package tgbot

import (
	"festhub/bot/botstorage"
	"festhub/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	subs       *subscriptions
}

func (c *UnsubCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Unsubscribe(user)
	if err != nil {
		return err
	}
	c.subs.Remove(user.FesthubUserID, user.ID)
	resp.Text = "Unsubscribed, no more notifications here."
	return nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribes this chat from notifications"
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
