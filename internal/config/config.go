package config

import (
	"os"

	authservice "festhub/auth/service"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`

	Auth authservice.Config `toml:"auth"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New(serverPath string, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
