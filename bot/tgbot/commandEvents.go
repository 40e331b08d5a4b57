package tgbot

import (
	"context"
	"strings"
	"time"

	"festhub/bot/model"
	"festhub/internal/domain"
	"festhub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type EventsCommand struct {
	eventService *service.EventService
}

func (c *EventsCommand) Run(_ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	events, err := c.eventService.List(context.Background())
	if err != nil {
		return err
	}
	upcoming, _ := domain.SplitUpcoming(events, time.Now())
	if len(upcoming) == 0 {
		resp.Text = "No upcoming events."
		return nil
	}
	var b strings.Builder
	b.WriteString("Upcoming events:\n")
	for i := range upcoming {
		if i > 9 {
			break
		}
		b.WriteString(upcoming[i].Title)
		b.WriteString(" - ")
		b.WriteString(upcoming[i].Date.Format("Jan 2, 2006 15:04"))
		b.WriteString("\n")
	}
	resp.Text = b.String()
	return nil
}

func (c *EventsCommand) Help() string {
	return "Shows the upcoming events"
}

func (c *EventsCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *EventsCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
