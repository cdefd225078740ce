package installer

// Intermediate answers that never reach the .env file.
const (
	keyChannel = "channel"
)

const (
	ChannelCLI      = "CLI"
	ChannelTelegram = "Telegram"
	ChannelHTTP     = "HTTP API"
)

type InstallState struct {
	EnvVars map[string]string
	answers map[string]string
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
		answers: make(map[string]string),
	}
}

func (s *InstallState) set(key, value string) {
	if isAnswerKey(key) {
		s.answers[key] = value
		return
	}
	s.EnvVars[key] = value
}

func (s *InstallState) get(key string) string {
	if isAnswerKey(key) {
		return s.answers[key]
	}
	return s.EnvVars[key]
}

func isAnswerKey(key string) bool {
	return key == keyChannel
}
