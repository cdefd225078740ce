package command

import (
	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/internal/service/session"
)

// NewRouter builds the router with every slash command registered.
func NewRouter(sessions *session.Store) *Router {
	r := New(nil)
	r.Register(
		NewHelpCommand(r.ListCommands),
		NewHistoryCommand(sessions),
		NewRulesCommand(),
	)
	return r
}

var _ core.CmdRouter = (*Router)(nil)
