package categorizer

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

func TestOllamaClient_Categorize(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaMessage{Role: "assistant", Content: "CATEGORY: BILLING\nCONFIDENCE: 75"},
			Done:    true,
		})
	}))
	defer srv.Close()

	client, err := NewOllamaClient(Config{
		Model:                    "llama3",
		EndpointURL:              srv.URL,
		Temperature:              0.3,
		PreventNumericCategories: true,
	})
	require.NoError(t, err)

	res, err := client.Categorize(context.Background(), CommitContext{Hash: "abc", Subject: "fix rounding"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "BILLING", res.Category)
	assert.Equal(t, 75, res.Confidence)

	assert.Equal(t, "llama3", gotReq.Model)
	assert.False(t, gotReq.Stream, "responses must not be streamed")
	assert.InDelta(t, 0.3, gotReq.Options.Temperature, 0.001)
	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "Commit: abc")
}

func TestOllamaClient_ServerErrorRetriedThenReported(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewOllamaClient(Config{Model: "llama3", EndpointURL: srv.URL, MaxAttempts: 2})
	require.NoError(t, err)
	client.retry.sleep = func(time.Duration) {}

	_, err = client.Categorize(context.Background(), CommitContext{Hash: "abc"}, nil)
	require.Error(t, err)
	assert.Equal(t, 2, calls)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ollama", apiErr.Provider)
	assert.Contains(t, err.Error(), "status 500")
}

func TestNewOllamaClient_RequiresEndpoint(t *testing.T) {
	_, err := NewOllamaClient(Config{Model: "llama3"})
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "endpoint_url", cfgErr.Field)
}
