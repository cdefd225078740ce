package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/sandevgo/weatherbot/internal/config"
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/service/session"
	"github.com/sandevgo/weatherbot/internal/service/ui"
	"github.com/sandevgo/weatherbot/pkg/conv"
	"github.com/sandevgo/weatherbot/pkg/log"
)

type Handler interface {
	Handle(ctx context.Context, sess *session.Session, text string) (string, bool)
}

type ReadLine struct {
	handler Handler
	session *session.Session
	rl      *readline.Instance
}

func NewReadLine(handler Handler, sessions *session.Store, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "🧍 ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		handler: handler,
		session: sessions.Get("cli-" + uuid.NewString()),
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("session", r.session.ID).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Msgf("%s is ready. Ask about the weather in any city, /help for more, 'exit' to quit.", core.BotName)

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if isExit(line) {
			return nil
		}

		if out, ok := render(ctx, r.handler, r.session, line); ok {
			fmt.Fprintf(r.rl.Stdout(), "%s %s\n\n", ui.ReplyStyle.Render("🤖"), out)
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func isExit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "exit")
}

// render runs one turn and converts the Markdown reply for the terminal.
func render(ctx context.Context, h Handler, sess *session.Session, line string) (string, bool) {
	reply, ok := h.Handle(ctx, sess, line)
	if !ok {
		return "", false
	}
	return conv.MarkdownToText([]byte(reply)), true
}
