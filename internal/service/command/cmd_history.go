package command

import (
	"context"
	"strings"

	"github.com/sandevgo/weatherbot/internal/service/session"
)

type HistoryCommand struct {
	sessions  *session.Store
	formatter *ResponseFormatter
}

func NewHistoryCommand(sessions *session.Store) *HistoryCommand {
	return &HistoryCommand{
		sessions:  sessions,
		formatter: NewResponseFormatter(),
	}
}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Show the conversation so far"
}

func (c *HistoryCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	sess, ok := c.sessions.Lookup(sessionID)
	if !ok || sess.Transcript.Len() == 0 {
		return c.formatter.Combine(
			c.formatter.Info("History"),
			c.formatter.Tip("Nothing here yet. Ask about the weather in a city."),
		), nil
	}

	return c.formatter.Combine(
		c.formatter.Info("History"),
		strings.Join(sess.Transcript.Lines(), "\n\n"),
	), nil
}
