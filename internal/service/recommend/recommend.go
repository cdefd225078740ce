// Package recommend maps current weather to a single activity suggestion.
//
// Rules are evaluated in order and the first one whose predicate holds wins.
// Several predicate ranges overlap on purpose (a clear 28°C day is both a
// beach day and a hiking day), so the order of the table below is part of the
// behavior and comparison operators must not be changed.
package recommend

import (
	"strings"

	"github.com/sandevgo/weatherbot/internal/core"
)

// Conditions is the input of the engine.
type Conditions struct {
	Temperature float64 // °C
	Condition   string  // free text, e.g. "light rain"
	Humidity    float64 // percent
	WindSpeed   float64 // km/h
	Rainfall    float64 // mm over the last hour
}

// FromReading converts a fetched reading into engine input.
func FromReading(r core.WeatherReading) Conditions {
	return Conditions{
		Temperature: float64(r.Temperature),
		Condition:   r.Condition,
		Humidity:    float64(r.Humidity),
		WindSpeed:   float64(r.WindSpeed),
		Rainfall:    r.Rainfall,
	}
}

// Rule is one entry of the cascade.
type Rule struct {
	Name     string
	Template string
	match    func(c Conditions) bool
}

const (
	Freezing           = "❄️ Freezing conditions with snow! Perfect for winter sports if equipped, otherwise stay cozy indoors with hot drinks."
	VeryCold           = "🥶 Very cold! Ideal for museum visits, indoor markets, or warm cafe hopping. Dress in layers!"
	Stormy             = "⛈️ Stormy weather! Stay indoors today. Perfect for museums, cinema, or exploring shopping malls safely."
	Rainy              = "🌧️ Rainy day! Good for indoor activities, gallery visits, or city tours with an umbrella."
	ExtremeHeat        = "🥵 Extremely hot! Stay in air-conditioned spaces. Early morning or evening outings only with plenty of water."
	VeryHot            = "🔥 Extremely hot! Beach only in morning/evening. Stay hydrated and avoid strenuous activities."
	StrongWind         = "💨 Strong winds! Beach swimming not safe. Good for indoor attractions or sheltered exploration."
	Windy              = "🌬️ Windy day! Beach umbrellas difficult. Good for wind-appropriate activities."
	HotHumid           = "💦 Hot and humid! Feels much warmer. Light activities recommended with hydration breaks."
	PerfectBeach       = "🏖️ PERFECT BEACH DAY! Ideal for swimming, sunbathing, snorkeling, and all water activities!"
	GoodBeach          = "🏝️ Great beach weather! Good for swimming and coastal activities."
	ExcellentHiking    = "🥾 EXCELLENT hiking weather! Perfect for nature trails, mountain walks, and outdoor adventures."
	OutdoorExploration = "🏙️ Great for outdoor exploration! Ideal for city tours, parks, markets, and sightseeing."
	Cool               = "🧥 Cool weather! Good for brisk walks, sightseeing with light jacket, and indoor/outdoor mix."
	CloudyDry          = "⛅ Cloudy but dry! Excellent for outdoor activities without strong sun - perfect for photography."
	Mixed              = "🌤️ Mixed weather conditions. Check local forecast and dress in layers for flexible outdoor/indoor activities."
)

var rules = []Rule{
	{
		Name:     "freezing",
		Template: Freezing,
		match: func(c Conditions) bool {
			return mentions(c, "snow") || c.Temperature <= 0
		},
	},
	{
		Name:     "very_cold",
		Template: VeryCold,
		match: func(c Conditions) bool {
			return c.Temperature <= 5
		},
	},
	{
		Name:     "storm",
		Template: Stormy,
		match: func(c Conditions) bool {
			return mentions(c, "thunderstorm") || c.Rainfall >= 70
		},
	},
	{
		Name:     "rain",
		Template: Rainy,
		match: func(c Conditions) bool {
			return mentions(c, "rain") || c.Rainfall >= 40
		},
	},
	{
		Name:     "extreme_heat",
		Template: ExtremeHeat,
		match: func(c Conditions) bool {
			return c.Temperature >= 38
		},
	},
	{
		Name:     "very_hot",
		Template: VeryHot,
		match: func(c Conditions) bool {
			return c.Temperature >= 35
		},
	},
	{
		Name:     "strong_wind",
		Template: StrongWind,
		match: func(c Conditions) bool {
			return c.WindSpeed >= 30
		},
	},
	{
		Name:     "windy",
		Template: Windy,
		match: func(c Conditions) bool {
			return c.WindSpeed >= 20
		},
	},
	{
		Name:     "hot_humid",
		Template: HotHumid,
		match: func(c Conditions) bool {
			return c.Humidity >= 85 && c.Temperature >= 25
		},
	},
	{
		Name:     "perfect_beach",
		Template: PerfectBeach,
		match: func(c Conditions) bool {
			return sunny(c) &&
				between(c.Temperature, 25, 32) &&
				c.Rainfall < 10 &&
				c.WindSpeed < 20 &&
				c.Humidity < 80
		},
	},
	{
		Name:     "good_beach",
		Template: GoodBeach,
		match: func(c Conditions) bool {
			return sunny(c) &&
				between(c.Temperature, 22, 35) &&
				c.Rainfall < 20 &&
				c.WindSpeed < 25
		},
	},
	{
		Name:     "excellent_hiking",
		Template: ExcellentHiking,
		match: func(c Conditions) bool {
			return between(c.Temperature, 15, 28) &&
				c.Rainfall < 30 &&
				c.WindSpeed < 25 &&
				c.Humidity < 85
		},
	},
	{
		Name:     "outdoor_exploration",
		Template: OutdoorExploration,
		match: func(c Conditions) bool {
			return between(c.Temperature, 18, 30) && c.Rainfall < 40
		},
	},
	{
		Name:     "cool",
		Template: Cool,
		match: func(c Conditions) bool {
			return c.Temperature >= 10 && c.Temperature < 18
		},
	},
	{
		Name:     "cloudy_dry",
		Template: CloudyDry,
		match: func(c Conditions) bool {
			return (mentions(c, "cloud") || mentions(c, "overcast")) && c.Rainfall < 20
		},
	},
	{
		Name:     "mixed",
		Template: Mixed,
		match: func(Conditions) bool {
			return true
		},
	},
}

// Recommend returns the suggestion of the first matching rule.
func Recommend(c Conditions) string {
	return Match(c).Template
}

// Match returns the first matching rule. The last rule always matches.
func Match(c Conditions) Rule {
	c.Condition = strings.ToLower(c.Condition)
	for _, r := range rules {
		if r.match(c) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Rules returns the cascade in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func mentions(c Conditions, word string) bool {
	return strings.Contains(c.Condition, word)
}

func sunny(c Conditions) bool {
	return mentions(c, "clear") || mentions(c, "sun")
}

// between reports lo <= v <= hi.
func between(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}
