package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// LLMConfig configures the OpenAI-compatible small talk backend.
type LLMConfig struct {
	BaseURL        string `env:"WEATHERBOT_LLM_BASE_URL" envDefault:"https://api.openai.com"`
	APIKey         string `env:"WEATHERBOT_LLM_API_KEY,required,notEmpty" secret:"true"`
	Model          string `env:"WEATHERBOT_LLM_MODEL" envDefault:"gpt-4o-mini"`
	MaxInputTokens int    `env:"WEATHERBOT_LLM_MAX_INPUT_TOKENS" envDefault:"256"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}

func (c LLMConfig) GetBaseURL() string     { return c.BaseURL }
func (c LLMConfig) GetAPIKey() string      { return c.APIKey }
func (c LLMConfig) GetModel() string       { return c.Model }
func (c LLMConfig) GetMaxInputTokens() int { return c.MaxInputTokens }
