package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/weatherbot/pkg/log"
)

const (
	SmallTalkCorpus = "corpus"
	SmallTalkLLM    = "llm"
	SmallTalkNone   = "none"
)

type AppConfig struct {
	RuntimePath string `env:"WEATHERBOT_RUNTIME_PATH"`

	// Transport Flags
	EnableCLI      bool `env:"WEATHERBOT_ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"WEATHERBOT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableHTTP     bool `env:"WEATHERBOT_ENABLE_HTTP" envDefault:"false"`

	// Small talk
	SmallTalk              string  `env:"WEATHERBOT_SMALLTALK" envDefault:"corpus"`
	SmallTalkMinConfidence float64 `env:"WEATHERBOT_SMALLTALK_MIN_CONFIDENCE" envDefault:"0.5"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "weatherbot.db")
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
