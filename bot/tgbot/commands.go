package tgbot

import (
	"festhub/bot/botstorage"
	"festhub/bot/model"
	"festhub/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	Run(user model.User, args string, resp *tgbotapi.MessageConfig) error
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	us *service.UserService,
	es *service.EventService,
	bs botstorage.BotStorage,
	subs *subscriptions,
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"events": &EventsCommand{
				eventService: es,
			},
			"top": &TopCommand{
				userService: us,
			},
			"link": &LinkCommand{
				userService: us,
				botStorage:  bs,
				subs:        subs,
			},
			"me": &MeCommand{
				userService: us,
			},
			"sub": &SubCommand{
				botStorage: bs,
				subs:       subs,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				subs:       subs,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args, resp)
			}
		}
	}
	return ErrBadRequest
}

func allRoles() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
