package tgbot

import (
	"context"
	"strconv"
	"strings"

	"festhub/bot/model"
	"festhub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TopCommand struct {
	userService *service.UserService
}

func (c *TopCommand) Run(_ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	leaderboard, err := c.userService.List(context.Background())
	if err != nil {
		return err
	}
	var buffer strings.Builder
	for i := range leaderboard {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(leaderboard[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(leaderboard[i].Points))
		buffer.WriteString(" points)\n")
	}
	if buffer.Len() == 0 {
		resp.Text = "The leaderboard is empty."
		return nil
	}
	resp.Text = buffer.String()
	return nil
}

func (c *TopCommand) Help() string {
	return "Shows the points leaderboard"
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
