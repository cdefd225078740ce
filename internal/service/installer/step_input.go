package installer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects one free text value. It is skipped when its condition
// does not hold for the answers given so far.
type InputStep struct {
	input    textinput.Model
	title    string
	key      string
	optional bool
	when     func(state *InstallState) bool
	validate func(string) error
	err      error
}

func newInputStep(title, key, placeholder string, secret bool) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return &InputStep{
		input: ti,
		title: title,
		key:   key,
	}
}

func NewWeatherKeyStep() Step {
	s := newInputStep("Enter your OpenWeatherMap API Key", "WEATHERBOT_OPENWEATHER_API_KEY", "32 hex characters", true)
	s.validate = notEmpty
	return s
}

func NewTelegramTokenStep() Step {
	s := newInputStep("Enter your Telegram Bot Token", "WEATHERBOT_TELEGRAM_TOKEN", "123456789:ABCDEF...", true)
	s.when = channelIs(ChannelTelegram)
	s.validate = notEmpty
	return s
}

func NewTelegramOwnerStep() Step {
	s := newInputStep("Enter your Telegram User ID to keep the bot private", "WEATHERBOT_TELEGRAM_OWNER_ID", "123456789", false)
	s.when = channelIs(ChannelTelegram)
	s.optional = true
	s.validate = optionalInt
	return s
}

func NewHTTPAddressStep() Step {
	s := newInputStep("Enter the address for the HTTP API", "WEATHERBOT_HTTP_ADDR", ":8080", false)
	s.when = channelIs(ChannelHTTP)
	s.optional = true
	return s
}

func NewLLMKeyStep() Step {
	s := newInputStep("Enter your LLM API Key", "WEATHERBOT_LLM_API_KEY", "sk-...", true)
	s.when = func(state *InstallState) bool {
		return state.get("WEATHERBOT_SMALLTALK") == "llm"
	}
	s.validate = notEmpty
	return s
}

func channelIs(channel string) func(*InstallState) bool {
	return func(state *InstallState) bool {
		return state.get(keyChannel) == channel
	}
}

func notEmpty(v string) error {
	if v == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func optionalInt(v string) error {
	if v == "" {
		return nil
	}
	if _, err := strconv.ParseInt(v, 10, 64); err != nil {
		return fmt.Errorf("%q is not a number", v)
	}
	return nil
}

func (s *InputStep) Init() tea.Cmd {
	// nextMsg lets skipped steps finish without a key press.
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.when != nil && !s.when(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			value := strings.TrimSpace(s.input.Value())
			if s.validate != nil {
				if s.err = s.validate(value); s.err != nil {
					return s, nil
				}
			}
			if value != "" {
				state.set(s.key, value)
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	hint := ""
	if s.optional {
		hint = " (optional - press Enter to skip)"
	}

	view := fmt.Sprintf("%s%s:\n\n%s\n\n", s.title, hint, s.input.View())
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
