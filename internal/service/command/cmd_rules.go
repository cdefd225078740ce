package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/weatherbot/internal/service/recommend"
)

type RulesCommand struct {
	formatter *ResponseFormatter
}

func NewRulesCommand() *RulesCommand {
	return &RulesCommand{
		formatter: NewResponseFormatter(),
	}
}

func (c *RulesCommand) Name() string {
	return "rules"
}

func (c *RulesCommand) Description() string {
	return "Show recommendation rules in evaluation order"
}

func (c *RulesCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	rules := recommend.Rules()
	items := make([]string, len(rules))
	for i, r := range rules {
		items[i] = fmt.Sprintf("%d. `%s` %s", i+1, r.Name, r.Template)
	}

	return c.formatter.Combine(
		c.formatter.Info("Recommendation Rules"),
		c.formatter.List(items),
		c.formatter.Tip("The first matching rule wins."),
	), nil
}
