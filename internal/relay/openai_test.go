package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var gotPath string
	var gotBody completionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]string{
				{"text": "Hello from Rela AI"},
				{"text": "second choice is ignored"},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "sk-test", "text-davinci-003")
	text, err := client.Complete(context.Background(), "Say hello")
	require.NoError(t, err)

	assert.Equal(t, "Hello from Rela AI", text)
	assert.Equal(t, "/v1/completions", gotPath)
	assert.Equal(t, "text-davinci-003", gotBody.Model)
	assert.Equal(t, "Say hello", gotBody.Prompt)
	assert.Equal(t, maxCompletionTokens, gotBody.MaxTokens)
}

func TestOpenAIClient_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key", "type": "invalid_request_error"},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "bad-key", "text-davinci-003")
	_, err := client.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL, "", "text-davinci-003")
	_, err := client.Complete(context.Background(), "hi")
	require.Error(t, err)
}
