package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/weatherbot/pkg/log"
)

type HTTPConfig struct {
	Address      string        `env:"WEATHERBOT_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"WEATHERBOT_HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WEATHERBOT_HTTP_WRITE_TIMEOUT" envDefault:"30s"`
}

func NewHTTPConfig(ctx context.Context) *HTTPConfig {
	c := &HTTPConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HTTP config")
	}
	return c
}
