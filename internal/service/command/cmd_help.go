package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
)

var helpExamples = []string{
	"What's the weather in London?",
	"Is it good for beach in Tokyo?",
	"Can I go hiking in Berlin?",
	"Weather in New York",
	"Temperature in Sydney",
}

var helpFeatures = []string{
	"🌤️ Live weather data worldwide",
	"🏖️ Beach activity recommendations",
	"🥾 Hiking condition analysis",
	"💬 Natural conversation",
}

// HelpCommand lists the commands of the router it is registered with.
type HelpCommand struct {
	list      func() []core.Command
	formatter *ResponseFormatter
}

func NewHelpCommand(list func() []core.Command) *HelpCommand {
	return &HelpCommand{
		list:      list,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show what the bot can do"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	var commands []string
	if c.list != nil {
		for _, cmd := range c.list() {
			commands = append(commands, fmt.Sprintf("**/%s** %s", cmd.Name(), cmd.Description()))
		}
	}

	return c.formatter.Combine(
		c.formatter.Section("ℹ️", "How to Use", "Ask about the weather in any city and get an activity recommendation."),
		c.formatter.Examples(helpExamples),
		c.formatter.Section("✨", "Features", strings.Join(helpFeatures, "\n")),
		c.formatter.Tip("Start city names with a capital letter."),
		c.formatter.Info("Commands"),
		c.formatter.List(commands),
	), nil
}
