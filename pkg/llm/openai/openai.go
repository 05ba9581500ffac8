package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/vanban-ai/summarizer/pkg/llm"
)

// Provider implements the LanguageModel interface for OpenAI.
type Provider struct {
	client *openai.Client
	config Config
}

// Config holds OpenAI-specific configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates a new OpenAI provider.
func New(config Config) *Provider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Provider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// ID returns the model identifier.
func (p *Provider) ID() string {
	return fmt.Sprintf("openai:%s", p.config.Model)
}

// Generate implements the Generate method of the LanguageModel interface.
func (p *Provider) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, llm.ErrEmptyResponse
	}

	choice := resp.Choices[0]
	return &llm.GenerateResponse{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
