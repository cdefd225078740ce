package core

import "fmt"

const (
	BotName          = "WeatherBot"
	BotUserAgent     = "WeatherBot/0.1"
	BotRepositoryURL = "https://github.com/sandevgo/weatherbot"
	BotVersion       = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// String renders the message the way it appears in a transcript.
func (m Message) String() string {
	if m.Role == RoleUser {
		return fmt.Sprintf("🧍‍♀️ You: %s", m.Content)
	}
	return fmt.Sprintf("🤖 %s: %s", BotName, m.Content)
}

// WeatherReading is the normalized current weather for one city.
type WeatherReading struct {
	City         string  `json:"city"`
	Temperature  int     `json:"temperature"` // °C, rounded
	Condition    string  `json:"condition"`   // lowercase description
	Humidity     int     `json:"humidity"`    // percent
	WindSpeed    int     `json:"wind_speed"`  // km/h, rounded
	Rainfall     float64 `json:"rainfall"`    // mm over the last hour
	RainfallText string  `json:"-"`           // as the API reported it, "" when absent
}
