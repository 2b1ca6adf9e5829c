package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-relay/internal/common/errors"
	"itinerary-relay/internal/common/logger"
	"itinerary-relay/internal/itinerary"
	"itinerary-relay/internal/itinerary/mock"
	"itinerary-relay/internal/itinerary/normalize"
)

// stubInvoker counts calls and returns a canned response or error.
type stubInvoker struct {
	text  string
	err   error
	calls int
}

func (s *stubInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubInvoker) Name() string { return "stub" }

func newTestPlanner(t *testing.T, inv *stubInvoker) *Planner {
	norm, err := normalize.NewNormalizer()
	require.NoError(t, err)
	return New(inv, norm, logger.NewTestLogger(t))
}

func validModelOutput(t *testing.T, destination string, days int) string {
	raw, err := json.Marshal(mock.Generate(destination, days))
	require.NoError(t, err)
	return string(raw)
}

func createGenerateRequest() itinerary.GenerateRequest {
	return itinerary.GenerateRequest{
		SessionID: "session-1",
		UserInput: itinerary.TripRequest{
			Destination:  "Tokyo",
			NumberOfDays: 4,
			TravelDates:  itinerary.TravelDates{Start: "2026-10-01", End: "2026-10-05"},
			TravelStyle:  "adventure",
			Interests:    []string{"food"},
			Budget:       "mid-range",
		},
	}
}

func createCustomizeRequest(t *testing.T) itinerary.CustomizeRequest {
	raw, err := json.Marshal(mock.Generate("Tokyo", 4))
	require.NoError(t, err)
	return itinerary.CustomizeRequest{
		SessionID:            "session-1",
		Itinerary:            raw,
		CustomizationRequest: "swap day 2 for a food tour",
	}
}

func TestGenerate_Success(t *testing.T) {
	inv := &stubInvoker{text: validModelOutput(t, "Tokyo", 4)}
	p := newTestPlanner(t, inv)

	it, err := p.Generate(context.Background(), createGenerateRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls)
	assert.Equal(t, "Tokyo", it.Destination.Name)
	assert.Equal(t, 4, it.Duration.Days)
}

func TestGenerate_MissingDestination(t *testing.T) {
	tests := []struct {
		name        string
		destination string
	}{
		{name: "empty", destination: ""},
		{name: "whitespace only", destination: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &stubInvoker{text: validModelOutput(t, "Tokyo", 4)}
			p := newTestPlanner(t, inv)

			req := createGenerateRequest()
			req.UserInput.Destination = tt.destination

			it, err := p.Generate(context.Background(), req)

			assert.Nil(t, it)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
			// Validation runs before any model call.
			assert.Equal(t, 0, inv.calls)
		})
	}
}

func TestGenerate_FallsBackToMockOnInvokerError(t *testing.T) {
	inv := &stubInvoker{err: errors.NewInvocationError(401, fmt.Errorf("invalid api key"))}
	p := newTestPlanner(t, inv)

	it, err := p.Generate(context.Background(), createGenerateRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls)
	// The mock honors the requested destination and duration via the prompt.
	assert.Equal(t, "Tokyo", it.Destination.Name)
	assert.Equal(t, 4, it.Duration.Days)
	require.NotNil(t, it.Metadata)
	assert.Equal(t, "mock", it.Metadata.GeneratedBy)
}

// Full mock path for a comma-bearing destination: the prompt's opening line
// must yield "Paris, France" back out of the `for (.+?)\.` extraction, and the
// resulting itinerary must hold the documented mock shape end to end.
func TestGenerate_MockEndToEnd(t *testing.T) {
	inv := &stubInvoker{err: errors.NewInvocationError(0, fmt.Errorf("connection refused"))}
	p := newTestPlanner(t, inv)

	req := createGenerateRequest()
	req.UserInput.Destination = "Paris, France"
	req.UserInput.NumberOfDays = 3

	it, err := p.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Paris, France", it.Destination.Name)
	assert.Equal(t, 3, it.Duration.Days)
	assert.Len(t, it.Activities, 6)
	for _, activity := range it.Activities {
		assert.GreaterOrEqual(t, activity.Day, 1)
		assert.LessOrEqual(t, activity.Day, 3)
	}

	require.Len(t, it.Accommodations, 1)
	assert.Equal(t, it.Duration.StartDate, it.Accommodations[0].CheckIn)
	assert.Equal(t, it.Duration.EndDate, it.Accommodations[0].CheckOut)

	require.Len(t, it.Transportation, 1)
	assert.Equal(t, 1, it.Transportation[0].Day)
}

func TestGenerate_SchemaErrorIsNotMasked(t *testing.T) {
	inv := &stubInvoker{text: "Sure, here is your itinerary!"}
	p := newTestPlanner(t, inv)

	it, err := p.Generate(context.Background(), createGenerateRequest())

	assert.Nil(t, it)
	assert.Equal(t, errors.ErrCodeSchema, errors.CodeOf(err))
}

func TestCustomize_Success(t *testing.T) {
	inv := &stubInvoker{text: validModelOutput(t, "Tokyo", 4)}
	p := newTestPlanner(t, inv)

	it, err := p.Customize(context.Background(), createCustomizeRequest(t))

	require.NoError(t, err)
	assert.Equal(t, 1, inv.calls)
	assert.Equal(t, "Tokyo", it.Destination.Name)
}

func TestCustomize_InvalidRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, req *itinerary.CustomizeRequest)
	}{
		{
			name: "missing itinerary",
			mutate: func(t *testing.T, req *itinerary.CustomizeRequest) {
				req.Itinerary = nil
			},
		},
		{
			name: "null itinerary",
			mutate: func(t *testing.T, req *itinerary.CustomizeRequest) {
				req.Itinerary = json.RawMessage("null")
			},
		},
		{
			name: "empty customization request",
			mutate: func(t *testing.T, req *itinerary.CustomizeRequest) {
				req.CustomizationRequest = "  "
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &stubInvoker{text: validModelOutput(t, "Tokyo", 4)}
			p := newTestPlanner(t, inv)

			req := createCustomizeRequest(t)
			tt.mutate(t, &req)

			it, err := p.Customize(context.Background(), req)

			assert.Nil(t, it)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
			assert.Equal(t, 0, inv.calls)
		})
	}
}

// Customize has no mock fallback: fabricating a modification would silently
// discard the user's itinerary.
func TestCustomize_NoFallbackOnInvokerError(t *testing.T) {
	inv := &stubInvoker{err: errors.NewInvocationError(500, fmt.Errorf("overloaded"))}
	p := newTestPlanner(t, inv)

	it, err := p.Customize(context.Background(), createCustomizeRequest(t))

	assert.Nil(t, it)
	assert.Equal(t, errors.ErrCodeInvocation, errors.CodeOf(err))
}
