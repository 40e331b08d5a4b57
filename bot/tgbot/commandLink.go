package tgbot

import (
	"context"
	"errors"

	"festhub/bot/botstorage"
	"festhub/bot/model"
	"festhub/internal/domain"
	"festhub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type LinkCommand struct {
	userService *service.UserService
	botStorage  botstorage.BotStorage
	subs        *subscriptions
}

func (c *LinkCommand) Run(user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if args == "" {
		resp.Text = "Usage: /link your@email.com"
		return nil
	}
	profile, err := c.userService.GetByEmail(context.Background(), args)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			resp.Text = "No festhub account found for " + args
			return nil
		}
		return err
	}
	err = c.botStorage.LinkProfile(user, profile.ID)
	if err != nil {
		return err
	}
	if user.Subscribed {
		c.subs.Remove(user.FesthubUserID, user.ID)
		c.subs.Add(profile.ID, user.ID)
	}
	resp.Text = "Linked to " + profile.Name + ". Use /me to see your profile or /sub to get notifications here."
	return nil
}

func (c *LinkCommand) Help() string {
	return "Links this chat to your festhub account by email"
}

func (c *LinkCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *LinkCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
