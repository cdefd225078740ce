package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/service/recommend"
	"github.com/sandevgo/weatherbot/internal/service/session"
	"github.com/sandevgo/weatherbot/pkg/log"
)

// Bot routes one user message per turn: weather report, city prompt, or
// small talk.
type Bot struct {
	weather   core.WeatherProvider
	smalltalk core.SmallTalker
	commands  core.CmdRouter
}

func NewBot(
	weather core.WeatherProvider,
	smalltalk core.SmallTalker,
	commands core.CmdRouter,
) *Bot {
	return &Bot{
		weather:   weather,
		smalltalk: smalltalk,
		commands:  commands,
	}
}

// Handle processes one turn for sess and returns the reply. Empty input is
// ignored and reported with ok == false. Slash commands are answered without
// touching the transcript; every other turn appends the user message and the
// reply.
func (b *Bot) Handle(ctx context.Context, sess *session.Session, text string) (reply string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if b.commands != nil {
		if out, handled := b.commands.Execute(ctx, sess.ID, text); handled {
			return out, true
		}
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Transcript.Append(core.Message{Role: core.RoleUser, Content: text})
	reply = b.respond(ctx, text)
	sess.Transcript.Append(core.Message{Role: core.RoleAssistant, Content: reply})
	return reply, true
}

func (b *Bot) respond(ctx context.Context, text string) string {
	logger := log.FromCtx(ctx)

	if city, found := ExtractCity(text); found {
		reading, err := b.weather.Current(ctx, city)
		if err != nil {
			return FetchFailed(city)
		}
		reading.City = city
		suggestion := recommend.Recommend(recommend.FromReading(reading))
		return FormatReport(reading, suggestion)
	}

	if MentionsWeather(text) {
		return MsgCityPrompt
	}

	reply, err := b.smalltalk.Reply(ctx, text)
	if err != nil {
		if !errors.Is(err, core.ErrNoResponse) {
			logger.Warn().Err(err).Msg("small talk failed")
		}
		return MsgFallback
	}
	return reply
}

// Report fetches weather for city and renders the report, without any
// session. Used by one-shot tools.
func (b *Bot) Report(ctx context.Context, city string) (string, error) {
	reading, err := b.weather.Current(ctx, city)
	if err != nil {
		return FetchFailed(city), err
	}
	reading.City = city
	return FormatReport(reading, recommend.Recommend(recommend.FromReading(reading))), nil
}
