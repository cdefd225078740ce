package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/weatherbot/pkg/log"
)

type WeatherConfig struct {
	APIKey  string        `env:"WEATHERBOT_OPENWEATHER_API_KEY,required,notEmpty" secret:"true"`
	BaseURL string        `env:"WEATHERBOT_OPENWEATHER_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	Timeout time.Duration `env:"WEATHERBOT_OPENWEATHER_TIMEOUT" envDefault:"10s"`
}

func NewWeatherConfig(ctx context.Context) *WeatherConfig {
	c := &WeatherConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Weather config")
	}
	return c
}

func (c WeatherConfig) GetAPIKey() string         { return c.APIKey }
func (c WeatherConfig) GetBaseURL() string        { return c.BaseURL }
func (c WeatherConfig) GetTimeout() time.Duration { return c.Timeout }
