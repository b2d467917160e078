// Package llm is a minimal chat-completions client for the palette backend.
package llm

import (
	"context"
)

// Defaults target the Hugging Face inference router.
const (
	DefaultEndpoint    = "https://router.huggingface.co/v1"
	DefaultModel       = "mistralai/Mistral-7B-Instruct-v0.3"
	DefaultMaxTokens   = 768
	DefaultTemperature = 0.7
)

// Message represents a chat message sent to or received from the LLM.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Options configures a single completion request. Zero values fall back to
// the provider's Config.
type Options struct {
	MaxTokens   int64
	Temperature float64
}

// Response is the result of a completion.
type Response struct {
	Content      string
	FinishReason string
	PromptTokens int64
	OutputTokens int64
}

// Provider abstracts a chat-completions backend.
type Provider interface {
	Complete(ctx context.Context, messages []Message, opts Options) (*Response, error)
	// Name returns the provider name.
	Name() string
	// Available reports whether the provider is configured with credentials.
	Available() bool
}

// Config holds provider configuration.
type Config struct {
	APIKey string
	Model  string
	// Provider routes the request to a specific inference provider behind the
	// router, e.g. "novita". It is appended to the model as "model:provider".
	Provider    string
	Endpoint    string
	MaxTokens   int64
	Temperature float64
}

// ModelID is the model name sent on the wire.
func (c Config) ModelID() string {
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	if c.Provider == "" {
		return model
	}
	return model + ":" + c.Provider
}
