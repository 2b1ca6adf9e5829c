package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	var gotBody map[string]string
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	resp, err := c.PostJSON(context.Background(), srv.URL, map[string]string{"x-custom": "v"}, map[string]string{"prompt": "hello"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "v", gotHeaders.Get("x-custom"))
	assert.Equal(t, map[string]string{"prompt": "hello"}, gotBody)
}

func TestPostJSON_UnmarshalableBody(t *testing.T) {
	c := NewClient(time.Second)
	_, err := c.PostJSON(context.Background(), "http://localhost:0", nil, func() {})
	assert.Error(t, err)
}
