package tgbot

import (
	"context"
	"strconv"
	"strings"

	"festhub/bot/model"
	"festhub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type MeCommand struct {
	userService *service.UserService
}

func (c *MeCommand) Run(user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if user.FesthubUserID == uuid.Nil {
		resp.Text = "This chat is not linked yet, use /link your@email.com"
		return nil
	}
	profile, err := c.userService.Get(context.Background(), user.FesthubUserID)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(profile.Name)
	b.WriteString("\n")
	b.WriteString(strconv.Itoa(profile.Points))
	b.WriteString(" points\n")
	b.WriteString(strconv.Itoa(profile.RegisteredEvents.Cardinality()))
	b.WriteString(" registered events\n")
	b.WriteString(strconv.Itoa(profile.QuizzesCompleted.Cardinality()))
	b.WriteString(" quizzes completed")
	resp.Text = b.String()
	return nil
}

func (c *MeCommand) Help() string {
	return "Shows your festhub profile"
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
