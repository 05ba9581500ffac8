// Package summarizer turns an extracted document and a classified question
// into an answer from the configured language model.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vanban-ai/summarizer/internal/domain"
	"github.com/vanban-ai/summarizer/pkg/llm"
)

const defaultTimeout = 2 * time.Minute

// Service builds intent-specific prompts and calls the language model.
type Service struct {
	model             llm.LanguageModel
	maxTokens         int
	temperature       float32
	maxDocumentLength int
	timeout           time.Duration
}

type Dependencies struct {
	Model       llm.LanguageModel
	MaxTokens   int
	Temperature float32
	// MaxDocumentLength is the document truncation limit in runes.
	MaxDocumentLength int
	// Timeout bounds a single provider call.
	Timeout time.Duration
}

func NewService(deps Dependencies) *Service {
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		model:             deps.Model,
		maxTokens:         deps.MaxTokens,
		temperature:       deps.Temperature,
		maxDocumentLength: deps.MaxDocumentLength,
		timeout:           timeout,
	}
}

// Summarize answers the question from the document content, instructing the
// model to follow the intent's output format. The provider call runs under
// the service timeout; there are no retries.
func (s *Service) Summarize(ctx context.Context, document, question string, intent domain.Intent) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := llm.GenerateRequest{
		System:      buildSystemPrompt(intent),
		Prompt:      buildUserPrompt(document, question, intent, s.maxDocumentLength),
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}

	start := time.Now()
	resp, err := s.model.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %v", domain.ErrProviderTimeout, s.timeout, err)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	log.Debug().
		Str("model", s.model.ID()).
		Str("question_type", string(intent.ID)).
		Dur("elapsed", time.Since(start)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("Generated answer")

	return resp.Content, nil
}
