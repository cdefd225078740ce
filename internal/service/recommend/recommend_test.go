package recommend

import (
	"testing"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		in   Conditions
		want string
	}{
		{
			name: "snow wins over everything",
			in:   Conditions{Temperature: 30, Condition: "light snow", Humidity: 50, WindSpeed: 40, Rainfall: 80},
			want: Freezing,
		},
		{
			name: "zero degrees is freezing",
			in:   Conditions{Temperature: 0, Condition: "clear sky", Humidity: 40},
			want: Freezing,
		},
		{
			name: "five degrees is very cold not freezing",
			in:   Conditions{Temperature: 5, Condition: "clear sky", Humidity: 40},
			want: VeryCold,
		},
		{
			name: "thunderstorm",
			in:   Conditions{Temperature: 22, Condition: "thunderstorm with light rain", Humidity: 90},
			want: Stormy,
		},
		{
			name: "heavy rainfall without rain in description",
			in:   Conditions{Temperature: 22, Condition: "overcast clouds", Humidity: 70, Rainfall: 70},
			want: Stormy,
		},
		{
			name: "rain in description",
			in:   Conditions{Temperature: 22, Condition: "light rain", Humidity: 70, Rainfall: 0.4},
			want: Rainy,
		},
		{
			name: "rainfall at 40 without description",
			in:   Conditions{Temperature: 22, Condition: "broken clouds", Humidity: 70, Rainfall: 40},
			want: Rainy,
		},
		{
			name: "38 is extreme heat",
			in:   Conditions{Temperature: 38, Condition: "clear sky", Humidity: 20},
			want: ExtremeHeat,
		},
		{
			name: "37.9 is very hot",
			in:   Conditions{Temperature: 37.9, Condition: "clear sky", Humidity: 20},
			want: VeryHot,
		},
		{
			name: "wind exactly 30 is strong wind",
			in:   Conditions{Temperature: 20, Condition: "clear sky", Humidity: 50, WindSpeed: 30},
			want: StrongWind,
		},
		{
			name: "wind just below 30 is windy",
			in:   Conditions{Temperature: 20, Condition: "clear sky", Humidity: 50, WindSpeed: 29},
			want: Windy,
		},
		{
			name: "wind exactly 20 is windy",
			in:   Conditions{Temperature: 20, Condition: "clear sky", Humidity: 50, WindSpeed: 20},
			want: Windy,
		},
		{
			name: "hot and humid",
			in:   Conditions{Temperature: 27, Condition: "clear sky", Humidity: 85, WindSpeed: 5},
			want: HotHumid,
		},
		{
			name: "perfect beach beats hiking and exploration",
			in:   Conditions{Temperature: 28, Condition: "clear sky", Humidity: 60, WindSpeed: 10, Rainfall: 0},
			want: PerfectBeach,
		},
		{
			name: "sunny but too humid for perfect beach",
			in:   Conditions{Temperature: 28, Condition: "sunny", Humidity: 80, WindSpeed: 10},
			want: GoodBeach,
		},
		{
			name: "good beach at 34",
			in:   Conditions{Temperature: 34, Condition: "clear sky", Humidity: 40, WindSpeed: 10},
			want: GoodBeach,
		},
		{
			name: "hiking when not sunny",
			in:   Conditions{Temperature: 20, Condition: "scattered clouds", Humidity: 60, WindSpeed: 10},
			want: ExcellentHiking,
		},
		{
			name: "exploration when too humid for hiking",
			in:   Conditions{Temperature: 20, Condition: "mist", Humidity: 90, WindSpeed: 10},
			want: OutdoorExploration,
		},
		{
			name: "exploration at 29 without sun",
			in:   Conditions{Temperature: 29, Condition: "haze", Humidity: 50, WindSpeed: 10},
			want: OutdoorExploration,
		},
		{
			name: "cool at 12",
			in:   Conditions{Temperature: 12, Condition: "overcast clouds", Humidity: 70, WindSpeed: 10},
			want: Cool,
		},
		{
			name: "cloudy but dry at 8",
			in:   Conditions{Temperature: 8, Condition: "overcast clouds", Humidity: 70, WindSpeed: 10},
			want: CloudyDry,
		},
		{
			name: "mixed fallback",
			in:   Conditions{Temperature: 8, Condition: "mist", Humidity: 70, WindSpeed: 10},
			want: Mixed,
		},
		{
			name: "condition matching is case insensitive",
			in:   Conditions{Temperature: 28, Condition: "Clear Sky", Humidity: 60, WindSpeed: 10},
			want: PerfectBeach,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.in))
		})
	}
}

func TestMatch_FirstRuleWins(t *testing.T) {
	conditions := []string{"clear sky", "few clouds", "overcast clouds", "light rain", "snow", "thunderstorm", "mist", "sunny"}
	temps := []float64{-5, 0, 0.5, 5, 5.1, 9.9, 10, 15, 17.9, 18, 22, 25, 28, 30, 32, 34.9, 35, 37.9, 38, 42}
	humidity := []float64{20, 79, 80, 84, 85, 95}
	winds := []float64{0, 19, 20, 24, 25, 29, 30, 50}
	rains := []float64{0, 9.9, 10, 19.9, 20, 29.9, 30, 39.9, 40, 69.9, 70}

	all := Rules()
	require.Len(t, all, 16)

	for _, cond := range conditions {
		for _, temp := range temps {
			for _, h := range humidity {
				for _, w := range winds {
					for _, r := range rains {
						c := Conditions{Temperature: temp, Condition: cond, Humidity: h, WindSpeed: w, Rainfall: r}
						got := Match(c)

						idx := -1
						for i, rule := range all {
							if rule.Name == got.Name {
								idx = i
								break
							}
						}
						require.GreaterOrEqual(t, idx, 0, "unknown rule %q", got.Name)
						require.True(t, all[idx].match(c))
						for _, earlier := range all[:idx] {
							require.False(t, earlier.match(c), "%+v: %s should have won over %s", c, earlier.Name, got.Name)
						}
						require.Equal(t, got.Template, Recommend(c))
					}
				}
			}
		}
	}
}

func TestRules_Order(t *testing.T) {
	names := make([]string, 0, 16)
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"freezing", "very_cold", "storm", "rain", "extreme_heat", "very_hot",
		"strong_wind", "windy", "hot_humid", "perfect_beach", "good_beach",
		"excellent_hiking", "outdoor_exploration", "cool", "cloudy_dry", "mixed",
	}, names)
}

func TestRules_ReturnsCopy(t *testing.T) {
	got := Rules()
	got[0].Template = "changed"
	assert.Equal(t, Freezing, Rules()[0].Template)
}

func TestFromReading(t *testing.T) {
	c := FromReading(core.WeatherReading{
		City:        "Lisbon",
		Temperature: 28,
		Condition:   "clear sky",
		Humidity:    60,
		WindSpeed:   10,
		Rainfall:    0,
	})
	assert.Equal(t, Conditions{Temperature: 28, Condition: "clear sky", Humidity: 60, WindSpeed: 10}, c)
	assert.Equal(t, PerfectBeach, Recommend(c))
}
