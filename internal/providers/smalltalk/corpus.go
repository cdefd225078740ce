package smalltalk

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// DefaultConversation is the built-in training conversation. Each line is a
// reply to the one before it.
var DefaultConversation = []string{
	"hi", "Hello! How can I help you today?",
	"hello", "Hi there! I'm WeatherBot, your friendly weather assistant!",
	"what is your name",
	"My name is WeatherBot. I can help you with weather forecasts and activity recommendations!",
	"thank you", "You're welcome!",
	"bye", "Goodbye! Stay safe and enjoy your day!",
	"what can you do",
	"I can check weather conditions worldwide and recommend if it's good for beach, hiking, or other activities!",
	"help",
	"Just ask me about weather in any city! Try: 'What's the weather in London?' or 'Is it good for beach in Tokyo?'",
}

// Corpus answers with the reply that followed the closest trained statement.
type Corpus struct {
	repo          core.CorpusRepository
	minConfidence float64
}

func NewCorpus(repo core.CorpusRepository, minConfidence float64) *Corpus {
	return &Corpus{
		repo:          repo,
		minConfidence: minConfidence,
	}
}

func (c *Corpus) Reply(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", core.ErrNoResponse
	}

	m, err := c.repo.BestMatch(ctx, text)
	if err != nil {
		return "", err
	}
	if m.Confidence < c.minConfidence || m.Response == "" {
		log.FromCtx(ctx).Debug().
			Float64("confidence", m.Confidence).
			Float64("min", c.minConfidence).
			Msg("no confident small talk match")
		return "", core.ErrNoResponse
	}
	return m.Response, nil
}

// Train stores a conversation: every line is recorded as the response to
// the previous one.
func (c *Corpus) Train(ctx context.Context, conversation []string) error {
	var previous string
	for i, line := range conversation {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		st := core.Statement{Text: line, InResponseTo: previous}
		if err := c.repo.AddStatement(ctx, st); err != nil {
			return fmt.Errorf("failed to train statement %d: %w", i, err)
		}
		previous = line
	}

	log.FromCtx(ctx).Debug().Int("statements", len(conversation)).Msg("small talk corpus trained")
	return nil
}
