package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajjad006/ardine-backend/pkg/llm"
)

func TestChat_SendsAuthAndParsesResponse(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "Hello from the waiter"}}]}`))
	}))
	defer srv.Close()

	provider := NewGroqProvider("test-key", "openai/gpt-oss-20b")
	provider.BaseURL = srv.URL

	out, err := provider.Chat(context.Background(),
		[]llm.Message{
			{Role: "system", Content: "You are a helpful AI waiter."},
			{Role: "user", Content: "hi"},
		},
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(500),
	)
	require.NoError(t, err)

	assert.Equal(t, "Hello from the waiter", out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "openai/gpt-oss-20b", gotBody["model"])
	assert.Equal(t, 0.4, gotBody["temperature"])
	assert.Equal(t, float64(500), gotBody["max_tokens"])
}

func TestChat_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewGroqProvider("test-key", "openai/gpt-oss-20b")
	provider.BaseURL = srv.URL

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestChat_EmptyChoicesIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	provider := NewGroqProvider("test-key", "openai/gpt-oss-20b")
	provider.BaseURL = srv.URL

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}
