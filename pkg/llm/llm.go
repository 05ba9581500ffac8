// Package llm defines the boundary to external text-generation providers.
package llm

import (
	"context"
	"errors"
)

// LanguageModel is implemented by all LLM providers.
type LanguageModel interface {
	// Generate produces a complete response (blocking).
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// ID returns the unique identifier for this model.
	ID() string
}

// GenerateRequest contains the parameters for a single-turn generation.
type GenerateRequest struct {
	// System is an optional system prompt.
	System string `json:"system,omitempty"`

	// Prompt is the user message.
	Prompt string `json:"prompt"`

	// Temperature controls randomness.
	Temperature float32 `json:"temperature,omitempty"`

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// GenerateResponse is the provider's answer.
type GenerateResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	FinishReason string `json:"finish_reason"`
	Usage        Usage  `json:"usage"`
}

// Usage reports token consumption for one call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ErrEmptyResponse is returned when the provider returns no content.
var ErrEmptyResponse = errors.New("empty response from provider")
