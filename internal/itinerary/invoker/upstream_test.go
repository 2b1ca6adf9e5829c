package invoker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinerary-relay/internal/common/config"
	"itinerary-relay/internal/common/errors"
	"itinerary-relay/internal/itinerary/mock"
)

func TestNewUpstream_RequiresBaseURL(t *testing.T) {
	_, err := NewUpstream(config.UpstreamConfig{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
}

func TestUpstream_Invoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req upstreamRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Prompt, "Lisbon")

		_ = json.NewEncoder(w).Encode(upstreamResponse{Text: `{"id":"itinerary_1"}`})
	}))
	defer srv.Close()

	inv, err := NewUpstream(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5000})
	require.NoError(t, err)

	text, err := inv.Invoke(context.Background(), "Create a detailed 3-day travel itinerary for Lisbon.")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"itinerary_1"}`, text)
}

func TestUpstream_Invoke_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(upstreamResponse{Text: "  "})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			inv, err := NewUpstream(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5000})
			require.NoError(t, err)

			_, err = inv.Invoke(context.Background(), "prompt")
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvocation, errors.CodeOf(err))
		})
	}
}

// The mock invoker's text must round-trip through JSON and honor the prompt's
// parameters, since it substitutes for real model output downstream.
func TestMock_Invoke(t *testing.T) {
	inv := NewMock()

	text, err := inv.Invoke(context.Background(), "Create a detailed 5-day travel itinerary for Madrid.")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))

	it := mock.FromPrompt("Create a detailed 5-day travel itinerary for Madrid.")
	assert.Equal(t, "Madrid", it.Destination.Name)
	assert.Contains(t, text, `"Madrid"`)
	assert.Contains(t, text, `"days":5`)
}
