package invoker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"itinerary-relay/internal/common/config"
	"itinerary-relay/internal/common/errors"
	httpc "itinerary-relay/internal/common/http"
)

// systemPrompt pins the model into JSON-only itinerary output. It travels as
// the Messages API system field rather than inside the user prompt.
const systemPrompt = "You are a professional travel planning expert. You create detailed, realistic travel itineraries based on user preferences. Always respond with valid JSON only, no markdown formatting or additional text."

const anthropicVersion = "2023-06-01"

// Anthropic calls the Anthropic Messages API directly.
type Anthropic struct {
	cfg    config.AnthropicConfig
	client *httpc.Client
}

// NewAnthropic fails fast when no usable credential is configured.
func NewAnthropic(cfg config.AnthropicConfig) (*Anthropic, error) {
	if !cfg.Configured() {
		return nil, errors.NewConfigurationError("set ANTHROPIC_API_KEY to call the model directly")
	}
	return &Anthropic{
		cfg:    cfg,
		client: httpc.NewClient(config.GetDuration(cfg.Timeout)),
	}, nil
}

func (a *Anthropic) Name() string { return config.StrategyAnthropic }

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Invoke sends one Messages API call and returns the text content. Transport
// and auth failures, and unexpected response shapes, surface as invocation
// errors carrying the upstream status where one was received.
func (a *Anthropic) Invoke(ctx context.Context, prompt string) (string, error) {
	payload := anthropicRequest{
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		System:      systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	resp, err := a.client.PostJSON(ctx, a.cfg.BaseURL, map[string]string{
		"x-api-key":         a.cfg.APIKey,
		"anthropic-version": anthropicVersion,
	}, payload)
	if err != nil {
		return "", errors.NewInvocationError(0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("anthropic: status %d: %s", resp.StatusCode, respBody))
	}

	var out anthropicResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if len(out.Content) == 0 || out.Content[0].Type != "text" {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("unexpected response format from Anthropic"))
	}

	return out.Content[0].Text, nil
}
