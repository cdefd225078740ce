package smalltalk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/sandevgo/weatherbot/pkg/log"
)

const (
	llmTimeout  = 30 * time.Second
	personaText = "You are WeatherBot, a friendly weather assistant. Keep replies to one or two short sentences. " +
		"You cannot look up weather yourself: when the user wants weather, tell them to name a city starting " +
		"with a capital letter, for example 'What's the weather in London?'."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLM delegates small talk to an OpenAI-compatible chat completions API.
type LLM struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	model    string
	truncate func(string) string
}

func NewLLM(cfg core.LLMConfig) *LLM {
	budget := newTokenBudget(cfg.GetMaxInputTokens())
	return &LLM{
		client: &http.Client{
			Timeout: llmTimeout,
		},
		baseURL:  strings.TrimRight(cfg.GetBaseURL(), "/"),
		apiKey:   cfg.GetAPIKey(),
		model:    cfg.GetModel(),
		truncate: budget.Truncate,
	}
}

func (l *LLM) Reply(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", core.ErrNoResponse
	}

	payload := map[string]any{
		"model": l.model,
		"messages": []chatMessage{
			{Role: core.RoleSystem, Content: personaText},
			{Role: core.RoleUser, Content: l.truncate(text)},
		},
	}

	resp, err := l.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	reply, err := parseChatResponse(resp)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("model", l.model).Msg("small talk completion failed")
		return "", err
	}
	return reply, nil
}

func (l *LLM) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, l.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.BotUserAgent)
	if l.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.apiKey)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

func parseChatResponse(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	var result struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", core.ErrNoResponse
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", core.ErrNoResponse
	}
	return content, nil
}
