package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/weatherbot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"WEATHERBOT_TELEGRAM_TOKEN,required,notEmpty" secret:"true"`
	// OwnerID restricts the bot to a single user; 0 serves everyone.
	OwnerID int64 `env:"WEATHERBOT_TELEGRAM_OWNER_ID" envDefault:"0"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
