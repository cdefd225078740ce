package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MsgCityPrompt = "Please mention a city name! For example: 'What's the weather in Paris?' or 'Is it good for beach in Tokyo?'"
	MsgFallback   = "I'm here to help with weather information! Ask me about weather in any city worldwide (Please start city name with capital letter 😉)."
	msgFetchFail  = "Sorry, I couldn't fetch weather data for %s. Please check the city name and try again."
)

var titleCaser = cases.Title(language.English)

// FetchFailed is the reply when no weather could be fetched for city.
func FetchFailed(city string) string {
	return fmt.Sprintf(msgFetchFail, city)
}

// FormatReport renders a reading and its recommendation as Markdown.
func FormatReport(r core.WeatherReading, suggestion string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Weather Report for %s** 🌤️\n\n", r.City)
	sb.WriteString("**Current Conditions:**\n")
	fmt.Fprintf(&sb, "• Temperature: %d°C\n", r.Temperature)
	fmt.Fprintf(&sb, "• Weather: %s\n", titleCaser.String(r.Condition))
	fmt.Fprintf(&sb, "• Humidity: %d%%\n", r.Humidity)
	fmt.Fprintf(&sb, "• Wind Speed: %d km/h\n", r.WindSpeed)
	fmt.Fprintf(&sb, "• Rainfall: %smm (last hour)\n\n", rainfall(r))
	sb.WriteString("**Activity Recommendation:**\n")
	sb.WriteString(suggestion)
	return sb.String()
}

func rainfall(r core.WeatherReading) string {
	if r.RainfallText != "" {
		return r.RainfallText
	}
	return strconv.FormatFloat(r.Rainfall, 'f', -1, 64)
}
