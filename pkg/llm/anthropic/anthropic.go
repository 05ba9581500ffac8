package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vanban-ai/summarizer/pkg/llm"
)

// Provider implements the LanguageModel interface for Anthropic Claude.
type Provider struct {
	client anthropic.Client
	config Config
}

// Config holds Anthropic-specific configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New creates a new Anthropic provider.
func New(config Config) *Provider {
	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &Provider{
		client: anthropic.NewClient(opts...),
		config: config,
	}
}

// ID returns the model identifier.
func (p *Provider) ID() string {
	return fmt.Sprintf("anthropic:%s", p.config.Model)
}

// Generate implements the Generate method of the LanguageModel interface.
func (p *Provider) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	msgReq := anthropic.MessageNewParams{
		Model: anthropic.Model(p.config.Model),
		Messages: []anthropic.MessageParam{
			{
				Role:    anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(req.Prompt)},
			},
		},
	}

	if req.System != "" {
		msgReq.System = []anthropic.TextBlockParam{{Text: req.System, Type: "text"}}
	}

	// Anthropic requires max_tokens, set a reasonable default
	if req.MaxTokens > 0 {
		msgReq.MaxTokens = int64(req.MaxTokens)
	} else {
		msgReq.MaxTokens = int64(4096)
	}

	if req.Temperature > 0 {
		msgReq.Temperature = anthropic.Float(float64(req.Temperature))
	}

	resp, err := p.client.Messages.New(ctx, msgReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if content.Len() == 0 {
		return nil, llm.ErrEmptyResponse
	}

	return &llm.GenerateResponse{
		Content:      content.String(),
		Model:        string(resp.Model),
		FinishReason: string(resp.StopReason),
		Usage: llm.Usage{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
			TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}
