package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vanban-ai/summarizer/internal/classifier"
	"github.com/vanban-ai/summarizer/internal/config"
	"github.com/vanban-ai/summarizer/internal/controllers"
	"github.com/vanban-ai/summarizer/internal/domain"
	"github.com/vanban-ai/summarizer/internal/extractor"
	"github.com/vanban-ai/summarizer/internal/formatter"
	"github.com/vanban-ai/summarizer/internal/server"
	"github.com/vanban-ai/summarizer/internal/summarizer"
	"github.com/vanban-ai/summarizer/pkg/llm"
	anthropicprovider "github.com/vanban-ai/summarizer/pkg/llm/anthropic"
	openaiprovider "github.com/vanban-ai/summarizer/pkg/llm/openai"
)

func NewStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the summarizer HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	return cmd
}

func runServer() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	model, err := newLanguageModel(cfg)
	if err != nil {
		return err
	}

	log.Info().
		Str("model", model.ID()).
		Str("upload_dir", cfg.UploadDir).
		Msg("Summarizer configuration loaded")

	questionClassifier, err := classifier.New(domain.DefaultIntents())
	if err != nil {
		return fmt.Errorf("failed to build classifier: %w", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	summarizeService := summarizer.NewService(summarizer.Dependencies{
		Model:             model,
		MaxTokens:         cfg.MaxTokens,
		Temperature:       float32(cfg.Temperature),
		MaxDocumentLength: cfg.MaxDocumentLength,
		Timeout:           cfg.ProviderTimeout(),
	})

	summarizeController := controllers.NewSummarizeController(controllers.SummarizeControllerDependencies{
		Extractors: extractor.NewDefaultRegistry(),
		Classifier: questionClassifier,
		Summarizer: summarizeService,
		Formatter:  formatter.New(),
		UploadDir:  cfg.UploadDir,
	})

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		SummarizeController: summarizeController,
		BodyLimit:           int(cfg.MaxFileSize),
	})

	log.Info().Str("address", cfg.HTTPAddress).Msg("Starting HTTP server")

	if err := app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("Summarizer service stopped")
	return nil
}

func newLanguageModel(cfg *config.Config) (llm.LanguageModel, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return openaiprovider.New(openaiprovider.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}), nil
	case config.ProviderClaude:
		return anthropicprovider.New(anthropicprovider.Config{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.ClaudeModel,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", cfg.AIProvider)
	}
}
