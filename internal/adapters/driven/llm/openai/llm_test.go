package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *CompletionService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	t.Cleanup(func() { service.Close() })
	return service
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestChat(t *testing.T) {
	var request chatCompletionRequest
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "The users API lists users."}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	reply, err := service.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "Answer from the documentation."},
		{Role: "user", Content: "how do I list users?"},
	}, driven.ChatOptions{MaxTokens: 256})
	require.NoError(t, err)

	assert.Equal(t, "The users API lists users.", reply)
	assert.Equal(t, DefaultModel, request.Model)
	assert.Equal(t, 256, request.MaxTokens)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, "system", request.Messages[0].Role)
}

func TestChat_APIError(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`))
	})

	_, err := service.Chat(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestChat_NoChoices(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := service.Chat(context.Background(), []driven.ChatMessage{
		{Role: "user", Content: "hello"},
	}, driven.ChatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestPing(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	assert.NoError(t, service.Ping(context.Background()))
}
