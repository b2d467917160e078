package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderComplete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var req openaiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3:novita", req.Model)
		assert.Equal(t, int64(768), req.MaxTokens)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openaiResponse{
			Choices: []openaiChoice{{Message: openaiMessage{Role: "assistant", Content: `{"primary":"#111111"}`}, FinishReason: "stop"}},
			Usage:   openaiUsage{PromptTokens: 12, CompletionTokens: 8},
		})
	}))
	defer ts.Close()

	p := NewOpenAIProvider(Config{
		APIKey:      "hf_test",
		Model:       DefaultModel,
		Provider:    "novita",
		Endpoint:    ts.URL + "/v1/",
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	})
	assert.True(t, p.Available())

	resp, err := p.Complete(context.Background(), []Message{{Role: "user", Content: "palette please"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, `{"primary":"#111111"}`, resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, int64(12), resp.PromptTokens)
	assert.Equal(t, int64(8), resp.OutputTokens)
}

func TestOpenAIProviderComplete_OptionsOverrideConfig(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openaiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(100), req.MaxTokens)
		assert.InDelta(t, 0.2, req.Temperature, 1e-9)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(openaiResponse{Choices: []openaiChoice{{Message: openaiMessage{Content: "ok"}}}})
	}))
	defer ts.Close()

	p := NewOpenAIProvider(Config{Endpoint: ts.URL, MaxTokens: 768, Temperature: 0.7})
	assert.False(t, p.Available())
	_, err := p.Complete(context.Background(), nil, Options{MaxTokens: 100, Temperature: 0.2})
	require.NoError(t, err)
}

func TestOpenAIProviderComplete_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"http status", http.StatusUnauthorized, `{"error":"bad token"}`, "api error (status 401)"},
		{"error object", http.StatusOK, `{"error":{"message":"model overloaded"}}`, "model overloaded"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "no choices"},
		{"garbage", http.StatusOK, `not json`, "unmarshal response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			_, err := NewOpenAIProvider(Config{Endpoint: ts.URL}).Complete(context.Background(), nil, Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigModelID(t *testing.T) {
	assert.Equal(t, DefaultModel, Config{}.ModelID())
	assert.Equal(t, "m:novita", Config{Model: "m", Provider: "novita"}.ModelID())
}
