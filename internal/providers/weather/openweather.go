package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/pkg/log"
)

const (
	defaultBaseURL  = "https://api.openweathermap.org/data/2.5/weather"
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
	msToKmh         = 3.6
)

var (
	ErrRequest = errors.New("weather request failed")
	ErrStatus  = errors.New("weather api error")
	ErrDecode  = errors.New("malformed weather response")
)

// OpenWeather fetches current conditions by city name. Every call hits the
// network; nothing is cached and failed calls are not retried.
type OpenWeather struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewOpenWeather(cfg core.WeatherConfig) *OpenWeather {
	timeout := cfg.GetTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := strings.TrimSpace(cfg.GetBaseURL())
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenWeather{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.GetAPIKey(),
	}
}

func (o *OpenWeather) Current(ctx context.Context, city string) (core.WeatherReading, error) {
	logger := log.FromCtx(ctx)

	reading, err := o.current(ctx, city)
	if err != nil {
		logger.Warn().Err(err).Str("city", city).Msg("failed to fetch weather")
		return core.WeatherReading{}, err
	}

	logger.Debug().
		Str("city", city).
		Int("temp", reading.Temperature).
		Str("condition", reading.Condition).
		Int("humidity", reading.Humidity).
		Int("wind", reading.WindSpeed).
		Float64("rain", reading.Rainfall).
		Msg("weather fetched")
	return reading, nil
}

func (o *OpenWeather) current(ctx context.Context, city string) (core.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return core.WeatherReading{}, fmt.Errorf("%w: empty city", ErrRequest)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return core.WeatherReading{}, fmt.Errorf("%w: create request: %v", ErrRequest, err)
	}
	req.Header.Set("User-Agent", core.BotUserAgent)

	resp, err := o.client.Do(req)
	if err != nil {
		return core.WeatherReading{}, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return core.WeatherReading{}, fmt.Errorf("%w: read body: %v", ErrRequest, err)
	}

	return parseCurrent(city, body)
}

// currentResponse mirrors the fields we use from /data/2.5/weather.
type currentResponse struct {
	Cod     any    `json:"cod"` // number on success, string on errors
	Message string `json:"message"`
	Main    *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		OneHour *json.Number `json:"1h"`
	} `json:"rain"`
}

func parseCurrent(city string, body []byte) (core.WeatherReading, error) {
	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return core.WeatherReading{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// Only a numeric 200 counts as success; errors come back as "404", "401"...
	if code, ok := raw.Cod.(float64); !ok || code != http.StatusOK {
		msg := raw.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return core.WeatherReading{}, fmt.Errorf("%w: cod=%v: %s", ErrStatus, raw.Cod, msg)
	}

	switch {
	case raw.Main == nil || raw.Main.Temp == nil:
		return core.WeatherReading{}, fmt.Errorf("%w: missing main.temp", ErrDecode)
	case raw.Main.Humidity == nil:
		return core.WeatherReading{}, fmt.Errorf("%w: missing main.humidity", ErrDecode)
	case len(raw.Weather) == 0:
		return core.WeatherReading{}, fmt.Errorf("%w: missing weather[0]", ErrDecode)
	case raw.Wind == nil || raw.Wind.Speed == nil:
		return core.WeatherReading{}, fmt.Errorf("%w: missing wind.speed", ErrDecode)
	}

	var (
		rain     float64
		rainText string
	)
	if raw.Rain != nil && raw.Rain.OneHour != nil {
		v, err := raw.Rain.OneHour.Float64()
		if err != nil {
			return core.WeatherReading{}, fmt.Errorf("%w: rain.1h: %v", ErrDecode, err)
		}
		rain = v
		rainText = formatRain(*raw.Rain.OneHour, v)
	}

	return core.WeatherReading{
		City:         city,
		Temperature:  round(*raw.Main.Temp),
		Condition:    strings.ToLower(raw.Weather[0].Description),
		Humidity:     round(*raw.Main.Humidity),
		WindSpeed:    round(*raw.Wind.Speed * msToKmh),
		Rainfall:     rain,
		RainfallText: rainText,
	}, nil
}

// formatRain keeps the number kind of the response: integer literals print
// bare, fractional ones keep at least one decimal ("1.0", "2.73").
func formatRain(n json.Number, v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(n.String(), ".eE") && !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// round rounds half to even: 0.5 -> 0, 1.5 -> 2.
func round(v float64) int {
	return int(math.RoundToEven(v))
}
