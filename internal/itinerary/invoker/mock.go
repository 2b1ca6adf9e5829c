package invoker

import (
	"context"
	"encoding/json"
	"fmt"

	"itinerary-relay/internal/common/config"
	"itinerary-relay/internal/itinerary/mock"
)

// Mock serves generation from the deterministic mock generator, marshalled
// back to JSON text so the output still passes through the normalizer like
// any model response.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Name() string { return config.StrategyMock }

func (m *Mock) Invoke(_ context.Context, prompt string) (string, error) {
	it := mock.FromPrompt(prompt)
	data, err := json.Marshal(it)
	if err != nil {
		return "", fmt.Errorf("marshal mock itinerary: %w", err)
	}
	return string(data), nil
}
