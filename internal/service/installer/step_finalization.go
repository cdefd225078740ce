package installer

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep turns the answers into the WEATHERBOT_* flags.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func finalize(state *InstallState) {
	channel := state.get(keyChannel)
	if channel == "" {
		channel = ChannelCLI
	}

	state.EnvVars["WEATHERBOT_ENABLE_CLI"] = strconv.FormatBool(channel == ChannelCLI)
	state.EnvVars["WEATHERBOT_ENABLE_TELEGRAM"] = strconv.FormatBool(channel == ChannelTelegram)
	state.EnvVars["WEATHERBOT_ENABLE_HTTP"] = strconv.FormatBool(channel == ChannelHTTP)

	if state.EnvVars["WEATHERBOT_SMALLTALK"] == "" {
		state.EnvVars["WEATHERBOT_SMALLTALK"] = "corpus"
	}
	if state.EnvVars["WEATHERBOT_DEBUG"] == "" {
		state.EnvVars["WEATHERBOT_DEBUG"] = "0"
	}
}
