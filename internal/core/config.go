package core

import "time"

type WeatherConfig interface {
	GetAPIKey() string
	GetBaseURL() string
	GetTimeout() time.Duration
}

type LLMConfig interface {
	GetBaseURL() string
	GetAPIKey() string
	GetModel() string
	GetMaxInputTokens() int
}
