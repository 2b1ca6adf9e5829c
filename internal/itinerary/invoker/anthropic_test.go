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
)

func anthropicTestConfig(baseURL string) config.AnthropicConfig {
	return config.AnthropicConfig{
		APIKey:      "sk-ant-test",
		BaseURL:     baseURL,
		Model:       "claude-3-haiku-20240307",
		MaxTokens:   4000,
		Temperature: 0.7,
		Timeout:     5000,
	}
}

func TestNewAnthropic_RequiresCredential(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{name: "empty key", apiKey: ""},
		{name: "placeholder key", apiKey: config.PlaceholderAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnthropic(config.AnthropicConfig{APIKey: tt.apiKey})
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
		})
	}
}

func TestAnthropic_Invoke_Success(t *testing.T) {
	var gotReq anthropicRequest
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": `{"id":"itinerary_1"}`},
			},
		})
	}))
	defer srv.Close()

	inv, err := NewAnthropic(anthropicTestConfig(srv.URL))
	require.NoError(t, err)

	text, err := inv.Invoke(context.Background(), "Create a detailed 3-day travel itinerary for Tokyo.")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"itinerary_1"}`, text)

	// Wire format the Messages API expects.
	assert.Equal(t, "sk-ant-test", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "application/json", gotHeaders.Get("content-type"))
	assert.Equal(t, "claude-3-haiku-20240307", gotReq.Model)
	assert.Equal(t, 4000, gotReq.MaxTokens)
	assert.Equal(t, systemPrompt, gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "Tokyo")
}

func TestAnthropic_Invoke_Failures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
	}{
		{
			name: "auth rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"type":"authentication_error"}}`, http.StatusUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "overloaded",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"type":"overloaded_error"}}`, 529)
			},
			wantStatus: 529,
		},
		{
			name: "body is not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>gateway error</html>"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "empty content array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"content":[]}`))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "non-text content block",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"content":[{"type":"tool_use"}]}`))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			inv, err := NewAnthropic(anthropicTestConfig(srv.URL))
			require.NoError(t, err)

			text, err := inv.Invoke(context.Background(), "prompt")
			assert.Empty(t, text)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvocation, errors.CodeOf(err))

			var se *errors.StandardError
			require.ErrorAs(t, err, &se)
			assert.True(t, se.Retryable)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantStatus, se.Metadata["status"])
			}
		})
	}
}

func TestAnthropic_Invoke_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	inv, err := NewAnthropic(anthropicTestConfig(srv.URL))
	require.NoError(t, err)

	_, err = inv.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvocation, errors.CodeOf(err))
}
