package tgbot

import (
	"errors"
	"testing"

	"festhub/internal/domain"
	"festhub/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type fakeBotAPI struct {
	sent    []int64
	failFor int64
}

func (f *fakeBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg := c.(tgbotapi.MessageConfig)
	if msg.ChatID == f.failFor {
		return tgbotapi.Message{}, errors.New("chat not found")
	}
	f.sent = append(f.sent, msg.ChatID)
	return tgbotapi.Message{}, nil
}

func (f *fakeBotAPI) GetUpdatesChan(_ tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return nil
}

func TestNotifyContinuesPastFailedChat(t *testing.T) {
	userID := uuid.New()
	subs := newSubs()
	subs.Add(userID, 100)
	subs.Add(userID, 200)
	subs.Add(userID, 300)

	api := &fakeBotAPI{failFor: 200}
	b := Bot{
		bot:  api,
		log:  logger.New(false).WithField("name", "tg_bot"),
		subs: subs,
	}
	b.Notify(domain.Notification{
		UserID:  userID,
		Title:   "Registration Confirmed",
		Message: "You have successfully registered for Summer Music Festival",
	})

	if len(api.sent) != 2 {
		t.Fatalf("delivered = %d chats, want 2", len(api.sent))
	}
	for _, chatID := range api.sent {
		if chatID == 200 {
			t.Errorf("delivered to failing chat %d", chatID)
		}
	}
}

func TestNotifyUnknownUser(t *testing.T) {
	b := Bot{
		bot:  &fakeBotAPI{},
		log:  logger.New(false).WithField("name", "tg_bot"),
		subs: newSubs(),
	}
	b.Notify(domain.Notification{UserID: uuid.New(), Title: "x"})
}
