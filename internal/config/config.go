package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// Config holds all service configuration.
type Config struct {
	// Server settings
	HTTPAddress string
	UploadDir   string
	MaxFileSize int64

	// AI provider
	AIProvider      string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	ClaudeModel     string

	// Generation settings
	MaxTokens              int
	Temperature            float64
	MaxDocumentLength      int
	ProviderTimeoutSeconds int
}

// Load loads configuration from files and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables - do this BEFORE reading config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":            "HTTP_ADDRESS",
		"UploadDir":              "UPLOAD_DIR",
		"MaxFileSize":            "MAX_FILE_SIZE",
		"AIProvider":             "AI_PROVIDER",
		"OpenAIAPIKey":           "OPENAI_API_KEY",
		"OpenAIModel":            "OPENAI_MODEL",
		"AnthropicAPIKey":        "ANTHROPIC_API_KEY",
		"ClaudeModel":            "CLAUDE_MODEL",
		"MaxTokens":              "MAX_TOKENS",
		"Temperature":            "TEMPERATURE",
		"MaxDocumentLength":      "MAX_DOCUMENT_LENGTH",
		"ProviderTimeoutSeconds": "PROVIDER_TIMEOUT_SECONDS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("summarizer_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.vanban")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ProviderTimeout returns the provider call timeout as a duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("UploadDir", "temp_uploads")
	v.SetDefault("MaxFileSize", 50*1024*1024)

	v.SetDefault("AIProvider", ProviderOpenAI)
	v.SetDefault("OpenAIModel", "gpt-4o-mini")
	v.SetDefault("ClaudeModel", "claude-3-5-sonnet-20241022")

	v.SetDefault("MaxTokens", 4000)
	v.SetDefault("Temperature", 0.3)
	v.SetDefault("MaxDocumentLength", 15000)
	v.SetDefault("ProviderTimeoutSeconds", 120)
}

func validateConfig(config *Config) error {
	switch config.AIProvider {
	case ProviderOpenAI:
		if config.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is %q", ProviderOpenAI)
		}
	case ProviderClaude:
		if config.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when AI_PROVIDER is %q", ProviderClaude)
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q (expected %q or %q)", config.AIProvider, ProviderOpenAI, ProviderClaude)
	}

	if config.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}

	return nil
}
