package smalltalk

import (
	"context"
	"fmt"

	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// NewSmallTalker creates the small talk backend selected in configuration.
// The corpus backend is trained with DefaultConversation before use.
func NewSmallTalker(ctx context.Context, cfg *config.AppConfig, repo core.CorpusRepository) (core.SmallTalker, error) {
	log.FromCtx(ctx).Info().
		Str("backend", cfg.SmallTalk).
		Msg("starting small talk backend")

	switch cfg.SmallTalk {
	case config.SmallTalkCorpus:
		corpus := NewCorpus(repo, cfg.SmallTalkMinConfidence)
		if err := corpus.Train(ctx, DefaultConversation); err != nil {
			return nil, fmt.Errorf("failed to train small talk corpus: %w", err)
		}
		return corpus, nil
	case config.SmallTalkLLM:
		return NewLLM(config.NewLLMConfig(ctx)), nil
	case config.SmallTalkNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("unknown small talk backend: %s", cfg.SmallTalk)
	}
}
