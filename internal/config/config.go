package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	Server      Server
	Database    Database
	Redis       Redis
	Cache       Cache
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

// Enabled reports whether the bot and its scheduled reports should run.
func (t TelegramBot) Enabled() bool {
	return t.Token != ""
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR" required:"true"`
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type Server struct {
	Addr        string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
}

type Database struct {
	URL string `envconfig:"DATABASE_URL"`
}

type Redis struct {
	URL       string        `envconfig:"REDIS_URL"`
	LineupTTL time.Duration `envconfig:"LINEUP_CACHE_TTL" default:"6h"`
}

type Cache struct {
	LeagueSize int `envconfig:"LEAGUE_CACHE_SIZE" default:"128"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
