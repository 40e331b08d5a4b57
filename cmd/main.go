package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	authservice "festhub/auth/service"
	authsqlite "festhub/auth/storage/sqlite"
	botsqlite "festhub/bot/botstorage/sqlite"
	"festhub/bot/tgbot"
	"festhub/internal/config"
	"festhub/internal/logger"
	"festhub/internal/service"
	"festhub/internal/storage/sqlite"
	"festhub/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot config")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	storage, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}

	notificationService := service.NewNotificationService(log, storage)
	eventService := service.NewEventService(storage)
	userService := service.NewUserService(storage)
	registrationService := service.NewRegistrationService(storage, storage, notificationService)
	quizService := service.NewQuizService(storage, storage, notificationService)

	authStorage, err := authsqlite.New(log, cfg.Server.Auth.SqliteFile)
	if err != nil {
		return err
	}
	authService, err := authservice.New(context.Background(), cfg.Server.Auth, authStorage)
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(userService, eventService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		notificationService.SetRelay(bot.Notify)
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(
		cfg.Server,
		authService,
		userService,
		eventService,
		registrationService,
		quizService,
		notificationService,
	)
	if err != nil {
		return err
	}
	return server.Serve()
}
