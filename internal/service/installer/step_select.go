package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	label string
	value string
}

// SelectStep asks to pick one of a few fixed options.
type SelectStep struct {
	title   string
	key     string
	choices []choice
	cursor  int
}

func NewChannelStep() Step {
	return &SelectStep{
		title: "Where should WeatherBot chat with you?",
		key:   keyChannel,
		choices: []choice{
			{label: "Terminal (CLI)", value: ChannelCLI},
			{label: "Telegram bot", value: ChannelTelegram},
			{label: "HTTP JSON API", value: ChannelHTTP},
		},
	}
}

func NewSmallTalkStep() Step {
	return &SelectStep{
		title: "How should WeatherBot answer small talk?",
		key:   "WEATHERBOT_SMALLTALK",
		choices: []choice{
			{label: "Built-in conversation corpus", value: "corpus"},
			{label: "OpenAI-compatible LLM", value: "llm"},
			{label: "Don't, just show help", value: "none"},
		},
	}
}

func (s *SelectStep) Init() tea.Cmd {
	return nil
}

func (s *SelectStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.set(s.key, s.choices[s.cursor].value)
			return nil, nil
		}
	}
	return s, nil
}

func (s *SelectStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
