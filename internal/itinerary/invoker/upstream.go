package invoker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"itinerary-relay/internal/common/config"
	"itinerary-relay/internal/common/errors"
	httpc "itinerary-relay/internal/common/http"
)

// Upstream forwards prompts to another relay's generation endpoint instead of
// calling the model API directly. Used when the credential lives on a
// different host than this process.
type Upstream struct {
	cfg    config.UpstreamConfig
	client *httpc.Client
}

func NewUpstream(cfg config.UpstreamConfig) (*Upstream, error) {
	if cfg.BaseURL == "" {
		return nil, errors.NewConfigurationError("upstream.base_url is required for the upstream strategy")
	}
	return &Upstream{
		cfg:    cfg,
		client: httpc.NewClient(config.GetDuration(cfg.Timeout)),
	}, nil
}

func (u *Upstream) Name() string { return config.StrategyUpstream }

type upstreamRequest struct {
	Prompt string `json:"prompt"`
}

type upstreamResponse struct {
	Text string `json:"text"`
}

func (u *Upstream) Invoke(ctx context.Context, prompt string) (string, error) {
	url := strings.TrimSuffix(u.cfg.BaseURL, "/") + "/api/ai/generate"
	resp, err := u.client.PostJSON(ctx, url, nil, upstreamRequest{Prompt: prompt})
	if err != nil {
		return "", errors.NewInvocationError(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("upstream: status %d", resp.StatusCode))
	}

	var out upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if strings.TrimSpace(out.Text) == "" {
		return "", errors.NewInvocationError(resp.StatusCode, fmt.Errorf("upstream returned empty text"))
	}

	return out.Text, nil
}
