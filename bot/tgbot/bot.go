package tgbot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"festhub/bot/botstorage"
	botmodel "festhub/bot/model"
	"festhub/internal/config"
	"festhub/internal/domain"
	"festhub/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Bot struct {
	bot botAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs *subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(
	us *service.UserService,
	es *service.EventService,
	bs botstorage.BotStorage,
	cfg config.Config,
	log *logrus.Logger,
) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	users, err := bs.ListSubscribed()
	if err != nil {
		return nil, err
	}
	for i := range users {
		subs.Add(users[i].FesthubUserID, users[i].ID)
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("name", "tg_bot"),
		subs:       subs,
	}

	b.commands = NewCommands(us, es, bs, b.subs)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(tgUser.ID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.WithError(err).Error("unable to get user from db")
			return
		}
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        tgUser.ID,
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			Role:      botmodel.RoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to create user")
			return
		}
	}

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")

	err = b.commands.RunCommand(user, update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
		return
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

// Notify forwards a stored notification to every subscribed telegram
// account linked to the notification's user.
func (b *Bot) Notify(notif domain.Notification) {
	for _, chatID := range b.subs.ChatIDs(notif.UserID) {
		msg := tgbotapi.NewMessage(chatID, notif.Title+"\n"+notif.Message)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).Error("notify error")
			continue
		}
	}
}
